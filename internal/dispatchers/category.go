package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryMessaging                     // msg, title, inbox
	CategoryRoster                        // join, leave, players
	CategoryPermissions                   // grant, revoke
	CategoryUtility                       // help, version, exec, execc, execp, history, logs, config
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryMessaging:
		return "messaging"
	case CategoryRoster:
		return "players"
	case CategoryPermissions:
		return "permissions"
	case CategoryUtility:
		return "utility"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryUtility,
	CategoryMessaging,
	CategoryRoster,
	CategoryPermissions,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}

func categoryRank(c CommandCategory) int {
	for i, cat := range categoryOrder {
		if cat == c {
			return i
		}
	}
	return len(categoryOrder)
}
