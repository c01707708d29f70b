package haclient

import (
	"net"
	"testing"

	"github.com/gosuda/haclient/internal/entities"
)

// captureLogger records Warn calls so tests can assert on the non-fatal
// "log and skip" behavior of spec §4.8 without depending on log output.
type captureLogger struct {
	warnings []string
}

func (l *captureLogger) Debug(string, ...any) {}
func (l *captureLogger) Info(string, ...any)  {}
func (l *captureLogger) Warn(msg string, args ...any) {
	l.warnings = append(l.warnings, msg)
}
func (l *captureLogger) Error(string, ...any) {}

func newTestClient(logger Logger) *Client {
	return NewClient(ClientConfig{Host: "device", Logger: logger}, func() (net.Conn, error) {
		return nil, nil
	})
}

func TestSendCommandToUnknownEntityIsNonFatal(t *testing.T) {
	logger := &captureLogger{}
	c := newTestClient(logger)

	c.SendSwitchCommand("switch-does_not_exist", true)

	if len(logger.warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d: %v", len(logger.warnings), logger.warnings)
	}
}

func TestResolveKnownEntitySucceeds(t *testing.T) {
	logger := &captureLogger{}
	c := newTestClient(logger)
	c.registry.Register(entities.Entity{Key: 5, ObjectID: "relay_1", Type: "switch"})

	e, ok := c.resolve("switch-relay_1")
	if !ok || e.Key != 5 {
		t.Fatalf("resolve: got %+v, ok=%v", e, ok)
	}
	if len(logger.warnings) != 0 {
		t.Errorf("unexpected warnings: %v", logger.warnings)
	}
}

func TestCoverCommandRejectsEmptyOptions(t *testing.T) {
	logger := &captureLogger{}
	c := newTestClient(logger)
	c.registry.Register(entities.Entity{Key: 1, ObjectID: "blinds", Type: "cover"})

	c.SendCoverCommand("cover-blinds", CoverCommandOptions{})

	if len(logger.warnings) != 1 {
		t.Fatalf("expected one rejection warning, got %v", logger.warnings)
	}
}

func TestExecuteServiceUnknownNameIsNonFatal(t *testing.T) {
	logger := &captureLogger{}
	c := newTestClient(logger)

	c.ExecuteService("does_not_exist", nil)

	if len(logger.warnings) != 1 {
		t.Fatalf("expected one warning, got %v", logger.warnings)
	}
}

func TestEntitiesWithIDsAndAvailableIDs(t *testing.T) {
	c := newTestClient(&captureLogger{})
	c.registry.Register(entities.Entity{Key: 1, ObjectID: "relay_1", Type: "switch"})
	c.registry.Register(entities.Entity{Key: 2, ObjectID: "bulb", Type: "light"})

	withIDs := c.EntitiesWithIDs()
	if len(withIDs) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(withIDs))
	}
	if _, ok := withIDs["switch-relay_1"]; !ok {
		t.Error("missing switch-relay_1")
	}

	byType := c.AvailableEntityIDs()
	if len(byType["switch"]) != 1 || len(byType["light"]) != 1 {
		t.Errorf("got %v", byType)
	}

	if !c.HasEntity("light-bulb") {
		t.Error("expected light-bulb to be known")
	}
	if c.HasEntity("light-missing") {
		t.Error("expected light-missing to be unknown")
	}
}
