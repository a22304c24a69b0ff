package services

import (
	"context"
	"errors"

	"github.com/connectin/connectin/internal/models"
	pgrepo "github.com/connectin/connectin/internal/repositories/postgres"
	"github.com/connectin/connectin/internal/utils"
)

type ConnectionService interface {
	// Request creates a pending connection between requester and receiver.
	// A duplicate request is idempotent: alreadyExists is true and err nil.
	Request(ctx context.Context, requesterID, receiverID uint64) (alreadyExists bool, err error)
	Accept(ctx context.Context, accepterID, requesterID uint64) error
	StatusFor(ctx context.Context, viewerID, targetID uint64) (models.ConnectionStatus, error)
	AcceptedCount(ctx context.Context, userID uint64) (int64, error)
	ListAccepted(ctx context.Context, userID uint64) ([]models.Peer, error)
	ListAllStatuses(ctx context.Context, userID uint64) ([]models.PeerStatus, error)
}

type connectionService struct {
	connections pgrepo.ConnectionRepository
}

func NewConnectionService(connections pgrepo.ConnectionRepository) ConnectionService {
	return &connectionService{connections: connections}
}

func (s *connectionService) Request(ctx context.Context, requesterID, receiverID uint64) (bool, error) {
	const op = "ConnectionService.Request"

	if receiverID == 0 {
		return false, utils.E(utils.CodeInvalidArgument, op, "receiver id is required", nil)
	}

	pair, err := models.NewUserPair(requesterID, receiverID)
	if err != nil {
		return false, utils.E(utils.CodeInvalidArgument, op, "cannot connect with yourself", err)
	}

	if err := s.connections.CreatePending(ctx, pair); err != nil {
		if errors.Is(err, pgrepo.ErrPairExists) {
			return true, nil
		}
		return false, utils.E(utils.CodeInternal, op, "failed to create connection request", err)
	}
	return false, nil
}

func (s *connectionService) Accept(ctx context.Context, accepterID, requesterID uint64) error {
	const op = "ConnectionService.Accept"

	if requesterID == 0 {
		return utils.E(utils.CodeInvalidArgument, op, "requester id is required", nil)
	}

	pair, err := models.NewUserPair(accepterID, requesterID)
	if err != nil {
		return utils.E(utils.CodeInvalidArgument, op, "cannot connect with yourself", err)
	}

	if err := s.connections.AcceptPending(ctx, pair); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "no pending request found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to accept connection", err)
	}
	return nil
}

func (s *connectionService) StatusFor(ctx context.Context, viewerID, targetID uint64) (models.ConnectionStatus, error) {
	const op = "ConnectionService.StatusFor"

	if viewerID == targetID {
		return models.StatusSelf, nil
	}

	pair, err := models.NewUserPair(viewerID, targetID)
	if err != nil {
		return "", utils.E(utils.CodeInvalidArgument, op, "invalid user pair", err)
	}

	row, err := s.connections.GetByPair(ctx, pair)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return models.StatusNotConnected, nil
		}
		return "", utils.E(utils.CodeInternal, op, "failed to fetch connection", err)
	}
	return row.StatusFor(viewerID), nil
}

func (s *connectionService) AcceptedCount(ctx context.Context, userID uint64) (int64, error) {
	const op = "ConnectionService.AcceptedCount"

	count, err := s.connections.AcceptedCount(ctx, userID)
	if err != nil {
		return 0, utils.E(utils.CodeInternal, op, "failed to count connections", err)
	}
	return count, nil
}

func (s *connectionService) ListAccepted(ctx context.Context, userID uint64) ([]models.Peer, error) {
	const op = "ConnectionService.ListAccepted"

	peers, err := s.connections.ListAccepted(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list connections", err)
	}
	return peers, nil
}

func (s *connectionService) ListAllStatuses(ctx context.Context, userID uint64) ([]models.PeerStatus, error) {
	const op = "ConnectionService.ListAllStatuses"

	rows, err := s.connections.ListAllStatuses(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list connection statuses", err)
	}
	return rows, nil
}
