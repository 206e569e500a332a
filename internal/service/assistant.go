package service

import (
	"context"

	json "github.com/goccy/go-json"
	"github.com/jinzhu/copier"
	"github.com/tidwall/gjson"

	"canvasflow.dev/backend/internal/model/types"
	"canvasflow.dev/backend/internal/pkg/cferr"
	"canvasflow.dev/backend/internal/pkg/observability"
	"canvasflow.dev/backend/internal/util/rekuest"
)

// Assistant interprets the tagged-variant command set the chat assistant
// emits. Every verb dispatches into the same Activity service the REST
// surface uses, so assistant-driven mutations share validation, cache
// flushing and event publishing with user-driven ones.
type Assistant struct {
	ActivityService *Activity
}

func NewAssistant(activityService *Activity) *Assistant {
	return &Assistant{ActivityService: activityService}
}

// Execute decodes and runs one command envelope. A batch yields one result
// per item; every other verb yields exactly one. The error return is reserved
// for malformed envelopes; per-command failures are reported in the results.
func (s *Assistant) Execute(ctx context.Context, raw []byte) ([]*types.CommandResult, error) {
	verb := gjson.GetBytes(raw, "type").String()

	var results []*types.CommandResult
	switch verb {
	case types.CommandCreate:
		var cmd types.CreateCommand
		if err := s.decode(raw, &cmd); err != nil {
			return nil, err
		}
		results = []*types.CommandResult{s.executeCreate(ctx, &cmd)}
	case types.CommandUpdate:
		var cmd types.UpdateCommand
		if err := s.decode(raw, &cmd); err != nil {
			return nil, err
		}
		results = []*types.CommandResult{s.executeUpdate(ctx, &cmd)}
	case types.CommandMove:
		var cmd types.MoveCommand
		if err := s.decode(raw, &cmd); err != nil {
			return nil, err
		}
		results = []*types.CommandResult{s.executeMove(ctx, &cmd)}
	case types.CommandDelete:
		var cmd types.DeleteCommand
		if err := s.decode(raw, &cmd); err != nil {
			return nil, err
		}
		results = []*types.CommandResult{s.executeDelete(ctx, &cmd)}
	case types.CommandBatchCreate:
		var cmd types.BatchCreateCommand
		if err := s.decode(raw, &cmd); err != nil {
			return nil, err
		}
		results = make([]*types.CommandResult, 0, len(cmd.Items))
		for i := range cmd.Items {
			results = append(results, s.executeCreate(ctx, &cmd.Items[i]))
		}
	case "":
		observability.AssistantCommands.WithLabelValues("unknown", "rejected").Inc()
		return nil, cferr.ErrInvalidReq.Msg("missing command type")
	default:
		observability.AssistantCommands.WithLabelValues("unknown", "rejected").Inc()
		return nil, cferr.ErrInvalidReq.Msg("unknown command type: %s", verb)
	}

	for _, r := range results {
		outcome := "ok"
		if !r.OK {
			outcome = "failed"
		}
		observability.AssistantCommands.WithLabelValues(verb, outcome).Inc()
	}
	return results, nil
}

func (s *Assistant) decode(raw []byte, dest any) error {
	if err := json.Unmarshal(raw, dest); err != nil {
		return cferr.ErrInvalidReq.Msg("malformed command payload: %s", err)
	}
	if err := rekuest.Validate.Struct(dest); err != nil {
		return cferr.ErrInvalidReq.Msg("invalid command payload: %s", err)
	}
	return nil
}

func (s *Assistant) executeCreate(ctx context.Context, cmd *types.CreateCommand) *types.CommandResult {
	var req types.CreateActivityRequest
	if err := copier.Copy(&req, cmd); err != nil {
		return failure(types.CommandCreate, err)
	}

	activity, err := s.ActivityService.CreateActivity(ctx, &req)
	if err != nil {
		return failure(types.CommandCreate, err)
	}
	return &types.CommandResult{
		Type:       types.CommandCreate,
		OK:         true,
		ActivityID: activity.ActivityID,
		Detail:     activity,
	}
}

func (s *Assistant) executeUpdate(ctx context.Context, cmd *types.UpdateCommand) *types.CommandResult {
	var req types.UpdateActivityRequest
	if err := copier.Copy(&req, cmd); err != nil {
		return failure(types.CommandUpdate, err)
	}

	activity, err := s.ActivityService.UpdateActivity(ctx, cmd.ActivityID, &req)
	if err != nil {
		return failure(types.CommandUpdate, err)
	}
	return &types.CommandResult{
		Type:       types.CommandUpdate,
		OK:         true,
		ActivityID: activity.ActivityID,
		Detail:     activity,
	}
}

func (s *Assistant) executeMove(ctx context.Context, cmd *types.MoveCommand) *types.CommandResult {
	activity, err := s.ActivityService.MoveActivity(ctx, cmd.ActivityID, cmd.Status)
	if err != nil {
		return failure(types.CommandMove, err)
	}
	return &types.CommandResult{
		Type:       types.CommandMove,
		OK:         true,
		ActivityID: activity.ActivityID,
		Detail:     activity,
	}
}

func (s *Assistant) executeDelete(ctx context.Context, cmd *types.DeleteCommand) *types.CommandResult {
	if err := s.ActivityService.DeleteActivity(ctx, cmd.ActivityID); err != nil {
		return failure(types.CommandDelete, err)
	}
	return &types.CommandResult{
		Type:       types.CommandDelete,
		OK:         true,
		ActivityID: cmd.ActivityID,
	}
}

func failure(typ string, err error) *types.CommandResult {
	return &types.CommandResult{
		Type:  typ,
		OK:    false,
		Error: err.Error(),
	}
}
