package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// Resolver maps key strings to actions and builds the help listing from the
// same table, so the popup never shows a key the resolver would not act on.
type Resolver struct {
	bindings []Binding
	actions  map[string]Action
	keys     map[Action][]string
}

// NewResolver creates a resolver from bindings. A key bound twice resolves
// to its last binding.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: bindings,
		actions:  make(map[string]Action),
		keys:     make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.actions[k] = b.Action
			if !slices.Contains(r.keys[b.Action], k) {
				r.keys[b.Action] = append(r.keys[b.Action], k)
			}
		}
	}
	return r
}

// Resolve returns the action for a key, or "" if it is not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns every key that resolves to action, in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	var out []string
	for _, k := range r.keys[action] {
		if r.actions[k] == action {
			out = append(out, k)
		}
	}
	return out
}

// Help returns one bubbles binding per action in context, with the keys the
// resolver actually dispatches for it. Actions left without keys are skipped.
func (r *Resolver) Help(context string) []key.Binding {
	var out []key.Binding
	var seen []Action
	for _, b := range r.bindings {
		if b.Context != context || slices.Contains(seen, b.Action) {
			continue
		}
		seen = append(seen, b.Action)
		keys := r.KeysFor(b.Action)
		if len(keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(displayKeys(keys), b.Description),
		))
	}
	return out
}

// HelpGroups returns Help for each context, skipping empty groups.
func (r *Resolver) HelpGroups(contexts ...string) [][]key.Binding {
	var groups [][]key.Binding
	for _, ctx := range contexts {
		if g := r.Help(ctx); len(g) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}
