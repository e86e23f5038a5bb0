package models

type GoalKind string

// GoalTitle returns the display title stored alongside a goal row,
// matching what the mobile app writes.
func GoalTitle(kind GoalKind) string {
	if kind == GoalBudget {
		return "Aylık Bütçe"
	}
	return "Tasarruf Hedefi"
}
