package radial

import (
	"math"
	"testing"
)

func TestAnimationProgressUpSaturatesAtOne(t *testing.T) {
	p := NewAnimationProgress(1, 1)
	for i := 0; i < 100; i++ {
		p.Up()
	}
	if p.Value() != 1 {
		t.Errorf("Value = %v after 100 ticks up, want 1", p.Value())
	}
}

func TestAnimationProgressDownSaturatesAtZero(t *testing.T) {
	p := NewAnimationProgress(1, 1)
	for i := 0; i < 20; i++ {
		p.Up()
	}
	for i := 0; i < 200; i++ {
		p.Down()
	}
	if p.Value() != 0 {
		t.Errorf("Value = %v after decaying, want 0", p.Value())
	}
}

func TestAnimationProgressUpSlowsNearBound(t *testing.T) {
	p := NewAnimationProgress(1, 1)
	p.Up()
	first := p.Value()
	for i := 0; i < 10; i++ {
		p.Up()
	}
	before := p.Value()
	p.Up()
	late := p.Value() - before
	if late >= first {
		t.Errorf("late step %v not smaller than first step %v", late, first)
	}
}

func TestAnimationProgressStaysInRange(t *testing.T) {
	p := NewAnimationProgress(3, 2)
	for i := 0; i < 50; i++ {
		p.Up()
		if p.Value() < 0 || p.Value() > 1 {
			t.Fatalf("Value = %v out of [0, 1]", p.Value())
		}
	}
	for i := 0; i < 50; i++ {
		p.Down()
		if p.Value() < 0 || p.Value() > 1 {
			t.Fatalf("Value = %v out of [0, 1]", p.Value())
		}
	}
}

func TestAnimationProgressReset(t *testing.T) {
	p := NewAnimationProgress(1, 1)
	p.Up()
	p.Up()
	p.Reset()
	if p.Value() != 0 {
		t.Errorf("Value = %v after Reset, want 0", p.Value())
	}
}

func TestOpenAnimationReachesOne(t *testing.T) {
	a := NewOpenAnimation(0.2)

	a.Update(0.1)
	a.Update(0.1)

	if math.Abs(a.Value()-1) > 0.01 {
		t.Errorf("Value = %v after full duration, want ~1", a.Value())
	}
}

func TestOpenAnimationReset(t *testing.T) {
	a := NewOpenAnimation(0.2)
	a.Update(0.1)
	a.Reset()
	if a.Value() != 0 {
		t.Errorf("Value = %v after Reset, want 0", a.Value())
	}
}
