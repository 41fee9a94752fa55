package sketch

import (
	"testing"
	"time"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.title != "sketch" {
		t.Errorf("title = %q", o.title)
	}
	if o.background != White {
		t.Errorf("background = %+v, want White", o.background)
	}
	if o.shaderFormat != ShaderWGSL {
		t.Errorf("shaderFormat = %v, want WGSL", o.shaderFormat)
	}
	if o.frameTimeout != DefaultFrameTimeout {
		t.Errorf("frameTimeout = %v, want %v", o.frameTimeout, DefaultFrameTimeout)
	}
	if o.backend != nil {
		t.Error("backend should default to the registry")
	}
}

func TestOptionsApply(t *testing.T) {
	b := namedBackend("x")
	o := defaultOptions()
	for _, opt := range []Option{
		WithTitle("demo"),
		WithBackground(Black),
		WithBackend(b),
		WithShaderFormat(ShaderSPIRV),
		WithFrameTimeout(time.Second),
		WithFrameTimeout(0),
		WithFrameTimeout(-time.Second),
	} {
		opt(&o)
	}

	if o.title != "demo" || o.background != Black || o.backend != b ||
		o.shaderFormat != ShaderSPIRV || o.frameTimeout != time.Second {
		t.Errorf("options = %+v", o)
	}
}
