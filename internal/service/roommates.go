package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/roomledger/internal/events"
	"github.com/mmynk/roomledger/internal/models"
	"github.com/mmynk/roomledger/pkg/api"
)

// CreateRoommate adds a participant. Names are unique.
func (s *LedgerService) CreateRoommate(ctx context.Context, req *connect.Request[api.CreateRoommateRequest]) (*connect.Response[api.CreateRoommateResponse], error) {
	slog.Info("CreateRoommate request received", "name", req.Msg.Name)

	name, err := requireName("name", req.Msg.Name)
	if err != nil {
		return nil, toConnectError(err)
	}

	existing, err := s.store.ListParticipants(ctx)
	if err != nil {
		slog.Error("CreateRoommate failed", "error", err)
		return nil, toConnectError(err)
	}
	for _, p := range existing {
		if strings.EqualFold(p.Name, name) {
			return nil, toConnectError(fmt.Errorf("roommate %q: %w", name, ErrAlreadyExists))
		}
	}

	p := &models.Participant{Name: name}
	if err := s.store.CreateParticipant(ctx, p); err != nil {
		slog.Error("CreateRoommate failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Roommate created", "roommate_id", p.ID, "name", p.Name)
	s.publish(ctx, events.RoommateCreated, p.ID)

	return connect.NewResponse(&api.CreateRoommateResponse{Roommate: roommateToAPI(*p)}), nil
}

// ListRoommates returns participants in the order they joined.
func (s *LedgerService) ListRoommates(ctx context.Context, req *connect.Request[api.ListRoommatesRequest]) (*connect.Response[api.ListRoommatesResponse], error) {
	slog.Info("ListRoommates request received")

	participants, err := s.store.ListParticipants(ctx)
	if err != nil {
		slog.Error("ListRoommates failed", "error", err)
		return nil, toConnectError(err)
	}

	roommates := make([]api.Roommate, len(participants))
	for i, p := range participants {
		roommates[i] = roommateToAPI(p)
	}

	slog.Info("ListRoommates successful", "count", len(roommates))
	return connect.NewResponse(&api.ListRoommatesResponse{Roommates: roommates}), nil
}

// DeleteRoommate removes a participant and their paid marks. Their records
// stay, so they show up as a ghost in later settlements.
func (s *LedgerService) DeleteRoommate(ctx context.Context, req *connect.Request[api.DeleteRoommateRequest]) (*connect.Response[api.DeleteRoommateResponse], error) {
	slog.Info("DeleteRoommate request received", "roommate_id", req.Msg.ID)

	if err := s.store.DeleteParticipant(ctx, req.Msg.ID); err != nil {
		slog.Error("DeleteRoommate failed", "roommate_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Roommate deleted", "roommate_id", req.Msg.ID)
	s.publish(ctx, events.RoommateDeleted, req.Msg.ID)

	return connect.NewResponse(&api.DeleteRoommateResponse{}), nil
}
