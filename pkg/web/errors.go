package web

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/moogar0880/problems"

	"github.com/haus-node/haus/pkg/credits"
	"github.com/haus-node/haus/pkg/persistence"
	"github.com/haus-node/haus/pkg/registry"
)

func badRequest(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(400).
		WithInstance(c.Path()).
		WithType("validation_error").
		WithDetail(detail)

	return c.Status(fiber.StatusBadRequest).JSON(problem)
}

func notFound(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(404).
		WithInstance(c.Path()).
		WithType("not_found").
		WithDetail(detail)

	return c.Status(fiber.StatusNotFound).JSON(problem)
}

func internalError(c fiber.Ctx, err error) error {
	problem := problems.NewStatusProblem(500).
		WithInstance(c.Path()).
		WithType("internal_error").
		WithError(err)

	return c.Status(fiber.StatusInternalServerError).JSON(problem)
}

// paymentRequired reports an insufficient balance, carrying the amounts the
// client needs to render an upgrade prompt.
func paymentRequired(c fiber.Ctx, required, available int) error {
	problem := problems.NewStatusProblem(402).
		WithInstance(c.Path()).
		WithType("insufficient_credits").
		WithDetail("workspace balance cannot cover the estimated job cost")

	return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
		"type":      problem.Type,
		"title":     problem.Title,
		"status":    problem.Status,
		"detail":    problem.Detail,
		"instance":  problem.Instance,
		"required":  required,
		"available": available,
	})
}

// handleStoreError maps persistence and ledger errors onto problem responses.
func handleStoreError(c fiber.Ctx, err error) error {
	switch {
	case persistence.IsNotFound(err):
		problem := problems.NewStatusProblem(404).
			WithInstance(c.Path()).
			WithType("not_found").
			WithDetail(err.Error())

		return c.Status(fiber.StatusNotFound).JSON(problem)

	case errors.Is(err, credits.ErrWorkspaceNotFound):
		problem := problems.NewStatusProblem(404).
			WithInstance(c.Path()).
			WithType("workspace_not_found").
			WithDetail("workspace not found")

		return c.Status(fiber.StatusNotFound).JSON(problem)

	case errors.Is(err, registry.ErrDuplicateTargetPort):
		problem := problems.NewStatusProblem(400).
			WithInstance(c.Path()).
			WithType("duplicate_target_port").
			WithDetail(err.Error())

		return c.Status(fiber.StatusBadRequest).JSON(problem)

	default:
		return internalError(c, err)
	}
}
