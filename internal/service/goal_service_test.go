package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"fitgoals/internal/errors"
	"fitgoals/internal/model"
)

// MockGoalRepository is a mock implementation of GoalRepository.
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) Create(ctx context.Context, goal *model.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) FindByID(ctx context.Context, id uint) (*model.Goal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Goal), args.Error(1)
}

func (m *MockGoalRepository) FindByUserID(ctx context.Context, userID uint) ([]model.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Goal), args.Error(1)
}

func (m *MockGoalRepository) Update(ctx context.Context, goal *model.Goal) (int64, error) {
	args := m.Called(ctx, goal)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGoalRepository) DeleteCascade(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockProgressRepository is a mock implementation of ProgressRepository.
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Create(ctx context.Context, progress *model.Progress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

func (m *MockProgressRepository) FindByGoalID(ctx context.Context, goalID uint) ([]model.Progress, error) {
	args := m.Called(ctx, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Progress), args.Error(1)
}

func validGoalInput() *GoalInput {
	return &GoalInput{
		Name:      "Run 5k",
		Target:    float64(5),
		Unit:      "km",
		StartDate: "2024-01-01",
		EndDate:   "2024-06-01",
	}
}

func TestGoalService_CreateGoal(t *testing.T) {
	mockGoals := new(MockGoalRepository)
	mockGoals.On("Create", mock.Anything, mock.AnythingOfType("*model.Goal")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Goal).ID = 10
		}).Return(nil)

	svc := NewGoalService(mockGoals, new(MockProgressRepository))

	goal, err := svc.CreateGoal(context.Background(), 1, validGoalInput())

	assert.NoError(t, err)
	assert.Equal(t, uint(10), goal.ID)
	assert.Equal(t, uint(1), goal.UserID)
	assert.Equal(t, "Run 5k", goal.Name)
	assert.Equal(t, 5, goal.Target)
	assert.Equal(t, "km", goal.Unit)
	assert.Equal(t, "2024-01-01", *goal.StartDate)
	assert.Equal(t, "2024-06-01", *goal.EndDate)
	mockGoals.AssertExpectations(t)
}

func TestGoalService_CreateGoal_InvalidPayloadNeverPersisted(t *testing.T) {
	mockGoals := new(MockGoalRepository)
	svc := NewGoalService(mockGoals, new(MockProgressRepository))

	goal, err := svc.CreateGoal(context.Background(), 1, &GoalInput{Name: "", Target: -1, Unit: ""})

	assert.Nil(t, goal)
	var vErr *errors.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 3)
	mockGoals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGoalService_UpdateGoal_NotOwnerLeavesGoalUntouched(t *testing.T) {
	mockGoals := new(MockGoalRepository)
	mockGoals.On("FindByID", mock.Anything, uint(10)).
		Return(&model.Goal{ID: 10, UserID: 2, Name: "Run 5k"}, nil)

	svc := NewGoalService(mockGoals, new(MockProgressRepository))

	goal, err := svc.UpdateGoal(context.Background(), 1, 10, validGoalInput())

	assert.Nil(t, goal)
	assert.Equal(t, errors.ErrNotGoalOwner, err)
	mockGoals.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGoalService_UpdateGoal_MissingGoal(t *testing.T) {
	mockGoals := new(MockGoalRepository)
	mockGoals.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewGoalService(mockGoals, new(MockProgressRepository))

	goal, err := svc.UpdateGoal(context.Background(), 1, 99, validGoalInput())

	assert.Nil(t, goal)
	assert.Equal(t, errors.ErrGoalNotFound, err)
}

func TestGoalService_UpdateGoal_ZeroRowsAffected(t *testing.T) {
	mockGoals := new(MockGoalRepository)
	mockGoals.On("FindByID", mock.Anything, uint(10)).
		Return(&model.Goal{ID: 10, UserID: 1, Name: "Run 5k"}, nil).Once()
	mockGoals.On("Update", mock.Anything, mock.AnythingOfType("*model.Goal")).Return(int64(0), nil)

	svc := NewGoalService(mockGoals, new(MockProgressRepository))

	goal, err := svc.UpdateGoal(context.Background(), 1, 10, validGoalInput())

	assert.Nil(t, goal)
	assert.Equal(t, errors.ErrGoalNotFound, err)
}

func TestGoalService_UpdateGoal_Success(t *testing.T) {
	mockGoals := new(MockGoalRepository)
	mockGoals.On("FindByID", mock.Anything, uint(10)).
		Return(&model.Goal{ID: 10, UserID: 1, Name: "Run 5k", Target: 5, Unit: "km"}, nil)
	mockGoals.On("Update", mock.Anything, mock.MatchedBy(func(g *model.Goal) bool {
		return g.ID == 10 && g.Name == "Run 10k" && g.Target == 10
	})).Return(int64(1), nil)

	svc := NewGoalService(mockGoals, new(MockProgressRepository))

	in := validGoalInput()
	in.Name = "Run 10k"
	in.Target = "10"
	goal, err := svc.UpdateGoal(context.Background(), 1, 10, in)

	assert.NoError(t, err)
	assert.NotNil(t, goal)
	mockGoals.AssertExpectations(t)
}

func TestGoalService_DeleteGoal(t *testing.T) {
	tests := []struct {
		name          string
		callerID      uint
		setupMock     func(*MockGoalRepository)
		expectedError error
		deleteCalled  bool
	}{
		{
			name:     "owner deletes goal and cascade runs",
			callerID: 1,
			setupMock: func(m *MockGoalRepository) {
				m.On("FindByID", mock.Anything, uint(10)).Return(&model.Goal{ID: 10, UserID: 1}, nil)
				m.On("DeleteCascade", mock.Anything, uint(10)).Return(int64(1), nil)
			},
			deleteCalled: true,
		},
		{
			name:     "non-owner is rejected",
			callerID: 2,
			setupMock: func(m *MockGoalRepository) {
				m.On("FindByID", mock.Anything, uint(10)).Return(&model.Goal{ID: 10, UserID: 1}, nil)
			},
			expectedError: errors.ErrNotGoalOwner,
		},
		{
			name:     "missing goal",
			callerID: 1,
			setupMock: func(m *MockGoalRepository) {
				m.On("FindByID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrGoalNotFound,
		},
		{
			name:     "goal vanished between check and delete",
			callerID: 1,
			setupMock: func(m *MockGoalRepository) {
				m.On("FindByID", mock.Anything, uint(10)).Return(&model.Goal{ID: 10, UserID: 1}, nil)
				m.On("DeleteCascade", mock.Anything, uint(10)).Return(int64(0), nil)
			},
			expectedError: errors.ErrGoalNotFound,
			deleteCalled:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGoals := new(MockGoalRepository)
			tt.setupMock(mockGoals)

			svc := NewGoalService(mockGoals, new(MockProgressRepository))
			err := svc.DeleteGoal(context.Background(), tt.callerID, 10)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
			if !tt.deleteCalled {
				mockGoals.AssertNotCalled(t, "DeleteCascade", mock.Anything, mock.Anything)
			}
			mockGoals.AssertExpectations(t)
		})
	}
}

func TestGoalService_AddProgress(t *testing.T) {
	mockGoals := new(MockGoalRepository)
	mockGoals.On("FindByID", mock.Anything, uint(10)).Return(&model.Goal{ID: 10, UserID: 1}, nil)

	mockProgress := new(MockProgressRepository)
	mockProgress.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Progress) bool {
		return p.GoalID == 10 && p.Value == 3 && p.Date == "2024-03-15"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Progress).ID = 5
	}).Return(nil)

	svc := NewGoalService(mockGoals, mockProgress)

	progress, err := svc.AddProgress(context.Background(), 1, &ProgressInput{
		GoalID: float64(10),
		Value:  float64(3),
		Date:   "2024-03-15",
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(5), progress.ID)
	mockProgress.AssertExpectations(t)
}

func TestGoalService_AddProgress_NotOwner(t *testing.T) {
	mockGoals := new(MockGoalRepository)
	mockGoals.On("FindByID", mock.Anything, uint(10)).Return(&model.Goal{ID: 10, UserID: 2}, nil)

	mockProgress := new(MockProgressRepository)
	svc := NewGoalService(mockGoals, mockProgress)

	progress, err := svc.AddProgress(context.Background(), 1, &ProgressInput{
		GoalID: float64(10),
		Value:  float64(3),
		Date:   "2024-03-15",
	})

	assert.Nil(t, progress)
	assert.Equal(t, errors.ErrNotGoalOwner, err)
	mockProgress.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGoalService_AddProgress_InvalidPayload(t *testing.T) {
	mockGoals := new(MockGoalRepository)
	mockProgress := new(MockProgressRepository)
	svc := NewGoalService(mockGoals, mockProgress)

	progress, err := svc.AddProgress(context.Background(), 1, &ProgressInput{
		GoalID: float64(0),
		Value:  "abc",
		Date:   "2024-02-30",
	})

	assert.Nil(t, progress)
	var vErr *errors.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 3)
	mockGoals.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestGoalService_GetAllGoals(t *testing.T) {
	start := "2024-01-01"
	end := "2024-06-01"
	expected := []model.Goal{
		{
			ID: 10, UserID: 1, Name: "Run 5k", Target: 5, Unit: "km",
			StartDate: &start, EndDate: &end,
			Progress: []model.Progress{{ID: 1, GoalID: 10, Value: 2, Date: "2024-02-01"}},
		},
	}

	mockGoals := new(MockGoalRepository)
	mockGoals.On("FindByUserID", mock.Anything, uint(1)).Return(expected, nil)

	svc := NewGoalService(mockGoals, new(MockProgressRepository))

	goals, err := svc.GetAllGoals(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, expected, goals)
	assert.Len(t, goals[0].Progress, 1)
}
