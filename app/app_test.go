package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rise-and-shine/userbook/app"
	"github.com/rise-and-shine/userbook/dto"
	"github.com/rise-and-shine/userbook/logger"
	"github.com/rise-and-shine/userbook/nav"
	"github.com/rise-and-shine/userbook/screen"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userAPIMock struct {
	mock.Mock
}

func (m *userAPIMock) GetUsers(ctx context.Context) ([]dto.UserDTO, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]dto.UserDTO)
	return records, args.Error(1)
}

func (m *userAPIMock) GetUserByID(ctx context.Context, id int) (dto.UserDTO, error) {
	args := m.Called(ctx, id)
	record, _ := args.Get(0).(dto.UserDTO)
	return record, args.Error(1)
}

func record(id int, name string) dto.UserDTO {
	return dto.UserDTO{
		ID:      lo.ToPtr(id),
		Name:    lo.ToPtr(name),
		Email:   lo.ToPtr("mail@example.com"),
		Phone:   lo.ToPtr("555"),
		Website: lo.ToPtr("example.com"),
		Company: &dto.CompanyDTO{Name: lo.ToPtr("Acme"), CatchPhrase: lo.ToPtr("Slogan")},
		Address: &dto.AddressDTO{Street: lo.ToPtr("Street"), City: lo.ToPtr("City"), Zipcode: lo.ToPtr("000")},
	}
}

func newApp(t *testing.T, api *userAPIMock) (*app.App, *screen.QueueLauncher) {
	t.Helper()

	launcher := screen.NewQueueLauncher()
	a, err := app.New(app.Config{},
		app.WithUserAPI(api),
		app.WithLogger(logger.NewNop()),
		app.WithLauncher(launcher),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = a.Shutdown()
	})

	return a, launcher
}

func TestApp_UserList(t *testing.T) {
	t.Parallel()

	api := new(userAPIMock)
	api.On("GetUsers", mock.Anything).Return([]dto.UserDTO{record(1, "John Doe"), record(2, "Jane Smith")}, nil).Once()

	a, launcher := newApp(t, api)

	s := a.OpenUserList(t.Context(), nav.RouteUserList)
	assert.True(t, s.State().IsLoading())

	launcher.RunUntilIdle()

	users, ok := s.State().Value()
	require.True(t, ok)
	require.Len(t, users, 2)
	assert.Equal(t, "John Doe", users[0].Name)
	assert.Equal(t, "Jane Smith", users[1].Name)
}

func TestApp_UserList_ErrorMessageSurvivesTheStack(t *testing.T) {
	t.Parallel()

	api := new(userAPIMock)
	api.On("GetUsers", mock.Anything).Return(nil, errors.New("Network error"))

	a, launcher := newApp(t, api)

	s := a.OpenUserList(t.Context(), nav.RouteUserList)
	launcher.RunUntilIdle()

	msg, ok := s.State().Message()
	require.True(t, ok)
	assert.Equal(t, "Network error", msg)
}

func TestApp_UserDetail(t *testing.T) {
	t.Parallel()

	api := new(userAPIMock)
	api.On("GetUserByID", mock.Anything, 3).Return(record(3, "Clementine Bauch"), nil).Once()

	a, launcher := newApp(t, api)

	s := a.OpenUserDetail(t.Context(), nav.CreateDetailRoute(3), nav.Args{nav.ArgUserID: "3"})
	launcher.RunUntilIdle()

	user, ok := s.State().Value()
	require.True(t, ok)
	assert.Equal(t, "Clementine Bauch", user.Name)
	api.AssertExpectations(t)
}

func TestApp_UserDetail_InvalidID(t *testing.T) {
	t.Parallel()

	api := new(userAPIMock)
	a, launcher := newApp(t, api)

	s := a.OpenUserDetail(t.Context(), "user_detail/abc", nav.Args{nav.ArgUserID: "abc"})
	launcher.RunUntilIdle()

	assert.True(t, s.State().IsLoading())
	api.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
}
