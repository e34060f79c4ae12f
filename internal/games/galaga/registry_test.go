package galaga

import "testing"

func TestRegistryCompactKeepsOrder(t *testing.T) {
	r := NewRegistry[*Projectile](0)
	for i := range 5 {
		r.Add(&Projectile{Body: Body{X: float64(i)}})
	}
	r.Items()[1].Deleted = true
	r.Items()[3].Deleted = true

	if removed := r.Compact(); removed != 2 {
		t.Fatalf("Compact removed %d, want 2", removed)
	}
	want := []float64{0, 2, 4}
	if r.Len() != len(want) {
		t.Fatalf("Len = %d, want %d", r.Len(), len(want))
	}
	for i, p := range r.Items() {
		if p.X != want[i] {
			t.Errorf("item %d X = %v, want %v", i, p.X, want[i])
		}
	}
}

func TestRegistryEachSkipsMarked(t *testing.T) {
	r := NewRegistry[*Projectile](0)
	a := &Projectile{}
	b := &Projectile{}
	r.Add(a)
	r.Add(b)

	visited := 0
	r.Each(func(p *Projectile) {
		visited++
		// Marking a later entity during the pass hides it from the rest of the pass
		b.Deleted = true
	})
	if visited != 1 {
		t.Errorf("visited %d entities, want 1", visited)
	}
	if r.Len() != 2 {
		t.Errorf("marked entity removed before compaction")
	}
}

func TestRegistryEachIgnoresAdditions(t *testing.T) {
	r := NewRegistry[*Particle](0)
	r.Add(&Particle{Alpha: 1})

	visited := 0
	r.Each(func(p *Particle) {
		visited++
		r.Add(&Particle{Alpha: 1})
	})
	if visited != 1 {
		t.Errorf("visited %d, want 1", visited)
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
}

func TestRegistryLimitEvictsOldest(t *testing.T) {
	r := NewRegistry[*Particle](3)
	for i := range 5 {
		r.Add(&Particle{X: float64(i), Alpha: 1})
	}
	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3", r.Len())
	}
	for i, p := range r.Items() {
		if want := float64(i + 2); p.X != want {
			t.Errorf("item %d X = %v, want %v", i, p.X, want)
		}
	}
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry[*Enemy](0)
	r.Add(newEnemy(EnemyBasic, 0, 0))
	r.Clear()
	if r.Len() != 0 {
		t.Errorf("Len after Clear = %d", r.Len())
	}
}
