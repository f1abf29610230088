package state

import "fmt"

// GroupKind tags a Group value
type GroupKind int

const (
	GroupUnsorted GroupKind = iota
	GroupNamed
	GroupAll
)

// Group selects channels by group. All is a query wildcard, never a group a
// channel can belong to.
type Group struct {
	Kind GroupKind `json:"kind"`
	Name string    `json:"name,omitempty"`
}

// Unsorted is the group of channels that belong to no named group
func Unsorted() Group {
	return Group{Kind: GroupUnsorted}
}

// Named returns a named group. The empty name is the unsorted group.
func Named(name string) Group {
	if name == "" {
		return Unsorted()
	}
	return Group{Kind: GroupNamed, Name: name}
}

// AllGroups matches every channel
func AllGroups() Group {
	return Group{Kind: GroupAll}
}

// GroupOf returns the group a channel belongs to
func GroupOf(c *Channel) Group {
	return Named(c.Group)
}

// Matches reports whether a channel with the given group value is selected
func (g Group) Matches(channelGroup string) bool {
	switch g.Kind {
	case GroupAll:
		return true
	case GroupUnsorted:
		return channelGroup == ""
	default:
		return channelGroup == g.Name
	}
}

// IsAll reports whether g is the all-groups wildcard
func (g Group) IsAll() bool {
	return g.Kind == GroupAll
}

func (g Group) String() string {
	switch g.Kind {
	case GroupAll:
		return "<all>"
	case GroupUnsorted:
		return "<unsorted>"
	default:
		return fmt.Sprintf("%q", g.Name)
	}
}
