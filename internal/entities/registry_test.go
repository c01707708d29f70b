package entities

import "testing"

func TestRegistryLookupByKeyAndStringID(t *testing.T) {
	r := NewRegistry()
	r.Register(Entity{Key: 10, Name: "Relay 1", ObjectID: "Relay_1", Type: "Switch"})

	e, ok := r.ByKey(10)
	if !ok || e.Name != "Relay 1" {
		t.Fatalf("ByKey: got %+v, ok=%v", e, ok)
	}

	if !r.HasEntity("switch-relay_1") {
		t.Fatal("expected derived string id to be registered")
	}
	e2, ok := r.ByStringID("switch-relay_1")
	if !ok || e2.Key != 10 {
		t.Fatalf("ByStringID: got %+v, ok=%v", e2, ok)
	}

	key, ok := r.KeyForID("switch-relay_1")
	if !ok || key != 10 {
		t.Fatalf("KeyForID: got %d, ok=%v", key, ok)
	}

	if r.HasEntity("switch-nonexistent") {
		t.Error("unregistered id should not be found")
	}
}

func TestRegistryResetClearsEntries(t *testing.T) {
	r := NewRegistry()
	r.Register(Entity{Key: 1, ObjectID: "a", Type: "sensor"})
	r.Reset()
	if r.HasEntity("sensor-a") || len(r.All()) != 0 {
		t.Error("expected registry to be empty after Reset")
	}
}

func TestRegistryAvailableIDsByType(t *testing.T) {
	r := NewRegistry()
	r.Register(Entity{Key: 1, ObjectID: "a", Type: "switch"})
	r.Register(Entity{Key: 2, ObjectID: "b", Type: "switch"})
	r.Register(Entity{Key: 3, ObjectID: "c", Type: "light"})

	byType := r.AvailableIDsByType()
	if len(byType["switch"]) != 2 {
		t.Errorf("expected 2 switch ids, got %d", len(byType["switch"]))
	}
	if len(byType["light"]) != 1 {
		t.Errorf("expected 1 light id, got %d", len(byType["light"]))
	}
}

func TestServiceRegistryByNameAndKey(t *testing.T) {
	r := NewServiceRegistry()
	r.Register(Service{Key: 5, Name: "restart", Args: []ServiceArg{{Name: "delay", Type: 1}}})

	s, ok := r.ByName("restart")
	if !ok || s.Key != 5 {
		t.Fatalf("ByName: got %+v, ok=%v", s, ok)
	}
	s2, ok := r.ByKey(5)
	if !ok || s2.Name != "restart" {
		t.Fatalf("ByKey: got %+v, ok=%v", s2, ok)
	}
	if _, ok := r.ByName("unknown"); ok {
		t.Error("unknown service should not resolve")
	}
}
