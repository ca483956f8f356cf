package services

import (
	"context"
	"crewcast/contract"
	"crewcast/domain"
	"crewcast/errors"
	goerrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type IRegistrationService interface {
	CheckRegistration(ctx context.Context) (Registration, error)
	Register(ctx context.Context, email, firstName, lastName string) (domain.UserInfo, error)
}

// Registration tells whether the local node has a user profile.
type Registration struct {
	Node       domain.Node
	User       domain.UserInfo
	Registered bool
}

type RegistrationService struct {
	log       *slog.Logger
	backend   contract.IBackend
	notifier  contract.INotifier
	nodeRowID int64
}

func NewRegistrationService(log *slog.Logger, backend contract.IBackend, notifier contract.INotifier, nodeRowID int64) *RegistrationService {
	return &RegistrationService{log: log, backend: backend, notifier: notifier, nodeRowID: nodeRowID}
}

// CheckRegistration looks up the local node, then its user profile.
// A missing profile is not an error, a missing node is.
func (s *RegistrationService) CheckRegistration(ctx context.Context) (Registration, error) {
	node, err := s.localNode(ctx)
	if err != nil {
		return Registration{}, err
	}

	user, err := s.backend.GetUserByNodeID(ctx, node.NodeID)
	if goerrors.Is(err, errors.ErrNotFound) {
		return Registration{Node: node}, nil
	}
	if err != nil {
		return Registration{}, fmt.Errorf("check registration: %w", err)
	}
	user.NodeID = node.NodeID
	return Registration{Node: node, User: user, Registered: true}, nil
}

// Register creates the profile of the local node.
func (s *RegistrationService) Register(ctx context.Context, email, firstName, lastName string) (domain.UserInfo, error) {
	user := domain.UserInfo{
		Email:     strings.TrimSpace(email),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
	}

	// Input is checked before any backend call
	if err := validate.Struct(user); err != nil {
		s.notifier.Notify(domain.NewNotification(domain.LevelWarn, "Please enter a valid email and first name"))
		return domain.UserInfo{}, fmt.Errorf("%w: %v", errors.ErrInvalidUser, err)
	}

	node, err := s.localNode(ctx)
	if err != nil {
		s.fail(err)
		return domain.UserInfo{}, err
	}
	user.NodeID = node.NodeID

	if err := s.backend.CreateUser(ctx, user); err != nil {
		s.fail(err)
		return domain.UserInfo{}, err
	}
	s.log.Info("User registered", "nodeId", user.NodeID)
	s.notifier.Notify(domain.NewNotification(domain.LevelSuccess, fmt.Sprintf("Welcome, %s!", user.FirstName)))
	return user, nil
}

func (s *RegistrationService) localNode(ctx context.Context) (domain.Node, error) {
	node, err := s.backend.GetNodeByID(ctx, s.nodeRowID)
	if goerrors.Is(err, errors.ErrNotFound) {
		return domain.Node{}, fmt.Errorf("%w: row %d", errors.ErrNodeNotInitialized, s.nodeRowID)
	}
	if err != nil {
		return domain.Node{}, fmt.Errorf("get local node: %w", err)
	}
	return node, nil
}

func (s *RegistrationService) fail(err error) {
	s.log.Error("Failed to create user", "err", err)
	s.notifier.Notify(domain.NewNotification(domain.LevelError, "Failed to create user"))
}
