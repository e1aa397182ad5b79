package game

import (
	"math"
	"testing"
)

func TestSwitchActivateNotifies(t *testing.T) {
	s := NewSwitch(60, nil)
	calls := 0
	s.OnChange(func() { calls++ })

	s.Activate()
	if !s.Checked() || calls != 1 {
		t.Fatalf("after Activate: checked = %v, calls = %d", s.Checked(), calls)
	}
	s.Activate()
	if s.Checked() || calls != 2 {
		t.Fatalf("after second Activate: checked = %v, calls = %d", s.Checked(), calls)
	}
}

func TestSwitchSetCheckedIsSilent(t *testing.T) {
	s := NewSwitch(60, nil)
	s.OnChange(func() { t.Fatal("SetChecked must not notify") })
	s.SetChecked(true)
	if !s.Checked() || s.knob != 1 {
		t.Fatalf("checked = %v, knob = %v; want true, 1", s.Checked(), s.knob)
	}
}

func TestSwitchKnobSettles(t *testing.T) {
	s := NewSwitch(60, nil)
	s.Activate()
	for i := 0; i < 300; i++ {
		s.Animate()
	}
	if math.Abs(s.knob-1) > 0.01 {
		t.Fatalf("knob = %v after 5s, want ~1", s.knob)
	}
}

func TestSwitchContains(t *testing.T) {
	s := NewSwitch(60, nil)
	s.Place(800)
	x := 800 - int(switchWidth) - int(switchMargin)
	y := int(switchMargin)

	if !s.Contains(x+1, y+1) {
		t.Fatal("Contains() = false inside the track")
	}
	if s.Contains(x-1, y) || s.Contains(x, y+int(switchHeight)+1) || s.Contains(10, 10) {
		t.Fatal("Contains() = true outside the track")
	}
}

func TestSVGIconsRasterise(t *testing.T) {
	for name, data := range map[string][]byte{"sun": sunSVGData, "moon": moonSVGData} {
		img, err := svgToImage(data, iconSize, iconSize)
		if err != nil {
			t.Fatalf("%s: svgToImage() error = %v", name, err)
		}
		opaque := 0
		for i := 3; i < len(img.Pix); i += 4 {
			if img.Pix[i] > 0 {
				opaque++
			}
		}
		if opaque == 0 {
			t.Fatalf("%s: rasterised icon is empty", name)
		}
	}
}
