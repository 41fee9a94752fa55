package sketch

import (
	"image/color"
	"testing"
)

func TestNamedColors(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want Color
	}{
		{"black", Black, Color{0, 0, 0, 1}},
		{"red", Red, Color{1, 0, 0, 1}},
		{"green", Green, Color{0, 1, 0, 1}},
		{"blue", Blue, Color{0, 0, 1, 1}},
		{"yellow", Yellow, Color{1, 1, 0, 1}},
		{"magenta", Magenta, Color{1, 0, 1, 1}},
		{"cyan", Cyan, Color{0, 1, 1, 1}},
		{"white", White, Color{1, 1, 1, 1}},
		{"rgb", RGB(0.25, 0.5, 0.75), Color{0.25, 0.5, 0.75, 1}},
		{"rgba", RGBA(0.25, 0.5, 0.75, 0.5), Color{0.25, 0.5, 0.75, 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.c != tt.want {
				t.Errorf("got %+v, want %+v", tt.c, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#f00", color.NRGBA{255, 0, 0, 255}},
		{"0f08", color.NRGBA{0, 255, 0, 136}},
		{"#336699", color.NRGBA{0x33, 0x66, 0x99, 255}},
		{"33669980", color.NRGBA{0x33, 0x66, 0x99, 0x80}},
		{"#12345", color.NRGBA{0, 0, 0, 255}},
		{"", color.NRGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Hex(tt.in).Std().(color.NRGBA)
			if got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNamed(t *testing.T) {
	c, ok := Named("Tomato")
	if !ok {
		t.Fatal(`Named("Tomato") not found`)
	}
	if got, want := c.Std().(color.NRGBA), (color.NRGBA{0xff, 0x63, 0x47, 0xff}); got != want {
		t.Errorf(`Named("Tomato") = %v, want %v`, got, want)
	}
	if _, ok := Named("no-such-color"); ok {
		t.Error("unknown name should not be found")
	}
}

func TestColorStdRoundTrip(t *testing.T) {
	in := color.NRGBA{R: 10, G: 20, B: 30, A: 40}
	if got := FromColor(in).Std().(color.NRGBA); got != in {
		t.Errorf("FromColor(%v).Std() = %v", in, got)
	}
}

func TestColorStdClamps(t *testing.T) {
	got := Color{R: -1, G: 2, B: 0.5, A: 1}.Std().(color.NRGBA)
	want := color.NRGBA{R: 0, G: 255, B: 128, A: 255}
	if got != want {
		t.Errorf("Std() = %v, want %v", got, want)
	}
}

func TestPremultiply(t *testing.T) {
	got := RGBA(1, 0.5, 0, 0.5).Premultiply()
	want := Color{R: 0.5, G: 0.25, B: 0, A: 0.5}
	if got != want {
		t.Errorf("Premultiply() = %+v, want %+v", got, want)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "white", want: color.NRGBA{255, 255, 255, 255}},
		{in: "Navy", want: color.NRGBA{0, 0, 0x80, 255}},
		{in: "#336699", want: color.NRGBA{0x33, 0x66, 0x99, 255}},
		{in: "f00", want: color.NRGBA{255, 0, 0, 255}},
		{in: "#zzz", wantErr: true},
		{in: "12345", wantErr: true},
		{in: "notacolor", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseColor(%q) = %v, want error", tt.in, c)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if got := c.Std().(color.NRGBA); got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
