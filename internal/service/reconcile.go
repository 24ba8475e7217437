package service

import (
	"fmt"
	"sort"

	"github.com/lshigami/ExamPortal/internal/apperror"
)

// ReconcilePlan says what to do with a submitted child collection, given the ids
// its owner currently has. Update and Create hold indexes into the submission.
type ReconcilePlan struct {
	Update []int
	Create []int
	Delete []uint
}

// PlanReconcile diffs submitted identities against existing ones. A submitted id
// that the owner already has is updated in place; a missing or unknown id is
// created with a fresh identity; existing ids not submitted are deleted. The
// same id submitted twice is rejected.
func PlanReconcile(existing []uint, submitted []*uint) (ReconcilePlan, error) {
	owned := make(map[uint]bool, len(existing))
	for _, id := range existing {
		owned[id] = true
	}

	var plan ReconcilePlan
	kept := make(map[uint]bool, len(submitted))
	for i, id := range submitted {
		if id == nil || !owned[*id] {
			plan.Create = append(plan.Create, i)
			continue
		}
		if kept[*id] {
			return ReconcilePlan{}, fmt.Errorf("id %d submitted more than once: %w", *id, apperror.ErrValidation)
		}
		kept[*id] = true
		plan.Update = append(plan.Update, i)
	}

	for _, id := range existing {
		if !kept[id] {
			plan.Delete = append(plan.Delete, id)
		}
	}
	sort.Slice(plan.Delete, func(i, j int) bool { return plan.Delete[i] < plan.Delete[j] })
	return plan, nil
}
