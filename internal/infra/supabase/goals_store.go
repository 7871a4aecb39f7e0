package supabase

import (
	"context"
	"strings"
	"time"

	"github.com/sanchez1595/Personal-finance/internal/domain"

	"github.com/shopspring/decimal"
)

// ============================================================
// Goals & contributions
// ============================================================

type goalRow struct {
	ID                  string          `json:"id"`
	UserID              string          `json:"user_id"`
	Name                string          `json:"name"`
	Type                string          `json:"type"`
	TargetAmount        decimal.Decimal `json:"target_amount"`
	CurrentAmount       decimal.Decimal `json:"current_amount"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	Deadline            domain.Date     `json:"deadline"`
	Status              string          `json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
}

func (r goalRow) toDomain() domain.Goal {
	return domain.Goal{
		ID:                  r.ID,
		UserID:              r.UserID,
		Name:                r.Name,
		Type:                goalTypes.domain(r.Type, domain.GoalCustom),
		TargetAmount:        r.TargetAmount,
		CurrentAmount:       r.CurrentAmount,
		MonthlyContribution: r.MonthlyContribution,
		Deadline:            r.Deadline,
		Status:              goalStatuses.domain(r.Status, domain.GoalActive),
		CreatedAt:           r.CreatedAt,
	}
}

func goalPayload(in *domain.GoalInput) map[string]any {
	return map[string]any{
		"name":                 strings.TrimSpace(in.Name),
		"type":                 goalTypes.store(in.Type),
		"target_amount":        num(in.TargetAmount),
		"monthly_contribution": num(in.MonthlyContribution),
		"deadline":             in.Deadline.String(),
	}
}

func firstGoal(body []byte, id string) (*domain.Goal, error) {
	rows, err := decodeRows[goalRow](body, "goal")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &domain.ErrNotFound{Resource: "goal", ID: id}
	}
	g := rows[0].toDomain()
	return &g, nil
}

func goalFilter(userID, goalID string) *query {
	return newQuery().eq("user_id", userID).eq("id", goalID)
}

func (c *Client) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	var out []domain.Goal
	err := c.call(ctx, "ListGoals", userID, func(ctx context.Context) error {
		body, err := c.doGet(ctx, "goals", newQuery().eq("user_id", userID).order("created_at.desc"))
		if err != nil {
			return err
		}
		rows, err := decodeRows[goalRow](body, "goals")
		if err != nil {
			return err
		}
		out = make([]domain.Goal, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.toDomain())
		}
		return nil
	})
	return out, err
}

func (c *Client) GetGoal(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	var out *domain.Goal
	err := c.call(ctx, "GetGoal", userID, func(ctx context.Context) error {
		body, err := c.doGet(ctx, "goals", goalFilter(userID, goalID).limit(1))
		if err != nil {
			return err
		}
		out, err = firstGoal(body, goalID)
		return err
	})
	return out, err
}

func (c *Client) CreateGoal(ctx context.Context, userID string, in *domain.GoalInput) (*domain.Goal, error) {
	var out *domain.Goal
	err := c.callOnce(ctx, "CreateGoal", userID, func(ctx context.Context) error {
		data := goalPayload(in)
		data["user_id"] = userID
		data["current_amount"] = 0
		data["status"] = goalStatuses.store(domain.GoalActive)
		body, err := c.doPost(ctx, "goals", nil, data)
		if err != nil {
			return err
		}
		out, err = firstGoal(body, "")
		return err
	})
	return out, err
}

func (c *Client) UpdateGoal(ctx context.Context, userID, goalID string, in *domain.GoalInput) (*domain.Goal, error) {
	var out *domain.Goal
	err := c.call(ctx, "UpdateGoal", userID, func(ctx context.Context) error {
		body, err := c.doPatch(ctx, "goals", goalFilter(userID, goalID), goalPayload(in))
		if err != nil {
			return err
		}
		out, err = firstGoal(body, goalID)
		return err
	})
	return out, err
}

func (c *Client) DeleteGoal(ctx context.Context, userID, goalID string) error {
	return c.call(ctx, "DeleteGoal", userID, func(ctx context.Context) error {
		body, err := c.doDelete(ctx, "goals", goalFilter(userID, goalID))
		if err != nil {
			return err
		}
		_, err = firstGoal(body, goalID)
		return err
	})
}

func (c *Client) UpdateGoalStatus(ctx context.Context, userID, goalID string, status domain.GoalStatus) error {
	return c.call(ctx, "UpdateGoalStatus", userID, func(ctx context.Context) error {
		body, err := c.doPatch(ctx, "goals", goalFilter(userID, goalID), map[string]any{"status": goalStatuses.store(status)})
		if err != nil {
			return err
		}
		_, err = firstGoal(body, goalID)
		return err
	})
}

// addContributionRPC is a Postgres function that, in one transaction,
// inserts the goal_contributions row (ignoring a repeated p_id) and raises
// goals.current_amount by p_amount only when the row was new. It returns
// the goal row.
const addContributionRPC = "rpc/add_goal_contribution"

// AddContribution is safe to retry: the contribution id is generated by the
// caller and the function applies each id once.
func (c *Client) AddContribution(ctx context.Context, in *domain.GoalContribution) (*domain.Goal, error) {
	var out *domain.Goal
	err := c.call(ctx, "AddContribution", in.UserID, func(ctx context.Context) error {
		params := map[string]any{
			"p_id":                in.ID,
			"p_goal_id":           in.GoalID,
			"p_user_id":           in.UserID,
			"p_amount":            num(in.Amount),
			"p_contribution_date": in.ContributionDate.String(),
			"p_description":       nil,
		}
		if d := strings.TrimSpace(in.Description); d != "" {
			params["p_description"] = d
		}
		body, err := c.doPost(ctx, addContributionRPC, nil, params)
		if err != nil {
			return err
		}
		out, err = firstGoal(body, in.GoalID)
		return err
	})
	return out, err
}
