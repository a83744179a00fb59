package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"identity-dashboard/app/domain"
	mock_port "identity-dashboard/app/mocks"
	"identity-dashboard/app/usecase"
)

func TestUsageUsecase_Report(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	compute := mock_port.NewMockComputeClient(ctrl)
	now := time.Date(2012, time.March, 15, 12, 0, 0, 0, time.UTC)
	wantStart := time.Date(2012, time.March, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2012, time.March, 15, 23, 59, 59, 0, time.UTC)

	compute.EXPECT().ExtensionSupported(gomock.Any(), "SimpleTenantUsage").Return(true, nil)
	compute.EXPECT().UsageGet(gomock.Any(), "1", wantStart, wantEnd).
		Return(&domain.ProjectUsage{
			Servers: []domain.ServerUsage{
				{Name: "test_server", VCPUs: 2, RAMMB: 2048, DiskGB: 20, Hours: 1.25, Uptime: 4500, State: "active"},
			},
			TotalHours: 1.25,
			TotalVCPUs: 2.5,
			TotalRAMMB: 2560,
			TotalDisk:  25,
		}, nil)

	uc := usecase.NewUsageUsecase(compute, 0, testLogger())
	report, err := uc.Report(context.Background(), "1", now)

	require.NoError(t, err)
	assert.Equal(t, "1", report.ProjectID)
	assert.Equal(t, wantStart, report.Start)
	assert.Equal(t, wantEnd, report.End)
	require.Len(t, report.Servers, 1)
	assert.Equal(t, "test_server", report.Servers[0].Name)
}

func TestUsageUsecase_Report_DaysRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	compute := mock_port.NewMockComputeClient(ctrl)
	now := time.Date(2012, time.March, 15, 12, 0, 0, 0, time.UTC)
	wantStart := time.Date(2012, time.March, 14, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2012, time.March, 15, 23, 59, 59, 0, time.UTC)

	compute.EXPECT().ExtensionSupported(gomock.Any(), "SimpleTenantUsage").Return(true, nil)
	compute.EXPECT().UsageGet(gomock.Any(), "1", wantStart, wantEnd).
		Return(&domain.ProjectUsage{}, nil)

	uc := usecase.NewUsageUsecase(compute, 1, testLogger())
	report, err := uc.Report(context.Background(), "1", now)

	require.NoError(t, err)
	assert.Equal(t, wantStart, report.Start)
}

func TestUsageUsecase_Report_ExtensionUnsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	compute := mock_port.NewMockComputeClient(ctrl)
	compute.EXPECT().ExtensionSupported(gomock.Any(), "SimpleTenantUsage").Return(false, nil)
	// No UsageGet call: the report comes back empty.

	uc := usecase.NewUsageUsecase(compute, 0, testLogger())
	report, err := uc.Report(context.Background(), "1", time.Now())

	require.NoError(t, err)
	assert.Equal(t, "1", report.ProjectID)
	assert.Empty(t, report.Servers)
}

func TestUsageUsecase_Report_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	compute := mock_port.NewMockComputeClient(ctrl)
	compute.EXPECT().ExtensionSupported(gomock.Any(), "SimpleTenantUsage").Return(true, nil)
	compute.EXPECT().UsageGet(gomock.Any(), "1", gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	uc := usecase.NewUsageUsecase(compute, 0, testLogger())
	report, err := uc.Report(context.Background(), "1", time.Now())

	assert.Error(t, err)
	assert.Nil(t, report)
}
