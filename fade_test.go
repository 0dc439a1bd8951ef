package stamp

import "testing"

func TestFade(t *testing.T) {
	f := newFade()
	if f.value != restOpacity {
		t.Fatalf("initial value = %v", f.value)
	}

	f.retarget(activeOpacity)
	f.update(fadeDuration / 2)
	if f.value <= activeOpacity || f.value >= restOpacity {
		t.Errorf("midway value = %v, want between %v and %v", f.value, activeOpacity, restOpacity)
	}
	f.update(fadeDuration)
	if f.value != activeOpacity || f.tween != nil {
		t.Errorf("finished value = %v tween=%v", f.value, f.tween)
	}

	// Retargeting to the current target is a no-op.
	f.retarget(activeOpacity)
	if f.tween != nil {
		t.Error("retarget to the same value should not start a tween")
	}
}

func TestFade_WidgetSession(t *testing.T) {
	var d Dispatcher
	w := newTestWidget()
	press(&d, w, 175, 135)
	if w.fade.target != activeOpacity {
		t.Errorf("resize target = %v, want %v", w.fade.target, activeOpacity)
	}
	d.Dispatch(up(175, 135))
	if w.fade.target != restOpacity {
		t.Errorf("after release target = %v, want %v", w.fade.target, restOpacity)
	}

	press(&d, w, 120, 110)
	if w.fade.target != restOpacity {
		t.Error("drag candidate should not fade")
	}
	d.Dispatch(move(140, 110))
	if w.fade.target != activeOpacity {
		t.Error("confirmed drag should fade")
	}
	d.Dispatch(up(140, 110))
}
