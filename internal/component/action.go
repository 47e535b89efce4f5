// internal/component/action.go
package component

import "fmt"

// ActionKind - вид действия юнита. Набор закрыт: планировщик знает ровно эти четыре.
type ActionKind int

const (
	ActionTeleport ActionKind = iota
	ActionAttack
	ActionMove
	ActionAura
)

var actionNames = map[ActionKind]string{
	ActionTeleport: "teleport",
	ActionAttack:   "attack",
	ActionMove:     "move",
	ActionAura:     "aura",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// ParseActionKind converts a config name into an ActionKind.
func ParseActionKind(name string) (ActionKind, error) {
	for k, n := range actionNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// UnmarshalText lets priorities be written by name in YAML files.
func (k *ActionKind) UnmarshalText(text []byte) error {
	parsed, err := ParseActionKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalText writes the action by name.
func (k ActionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// DefaultPriorities is used when a unit definition does not list its own.
var DefaultPriorities = []ActionKind{ActionTeleport, ActionAttack, ActionAura, ActionMove}

// Behavior is the ordered list of actions a unit tries each animation tick.
// Current may be overridden by a group order; Default is the restore point.
type Behavior struct {
	Current []ActionKind
	Default []ActionKind
	Last    ActionKind
	Acted   bool // whether Last is meaningful
}

// Restore puts the default priorities back.
func (b *Behavior) Restore() {
	b.Current = append([]ActionKind(nil), b.Default...)
}
