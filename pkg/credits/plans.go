package credits

import "github.com/haus-node/haus/pkg/models"

// planCredits is the monthly credit grant per plan tier.
var planCredits = map[models.PlanType]int{
	models.PlanFree:       150,
	models.PlanStarter:    1500,
	models.PlanPro:        4000,
	models.PlanTeam:       4500,
	models.PlanEnterprise: 999999,
}

// PlanCredits returns the monthly grant for a plan. Unknown plans fall back
// to the free tier.
func PlanCredits(plan models.PlanType) int {
	if credits, ok := planCredits[plan]; ok {
		return credits
	}

	return planCredits[models.PlanFree]
}
