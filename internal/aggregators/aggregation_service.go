package aggregators

import (
	"context"

	"printer-report/internal/directories"
	"printer-report/internal/models"
	"printer-report/internal/shared/loggers"
	"printer-report/internal/shared/metrics"
)

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	// Aggregate adds one extracted job to the run's statistics.
	Aggregate(ctx context.Context, job *models.JobRecord) error
	// Statistics returns the statistics collected so far. They stay owned by the service.
	Statistics() *models.PrintStatistics
}

type aggregationService struct {
	rolluper  JobRolluper
	directory directories.Directory
	stats     *models.PrintStatistics

	// Users print many jobs; the directory is asked once per user and run.
	groupsByUser map[string][]string
}

// NewAggregationService returns a service for one run. directory may be nil only when opts.Groups is off.
func NewAggregationService(rolluper JobRolluper, directory directories.Directory, opts models.StatisticsOptions) AggregationService {
	return &aggregationService{
		rolluper:     rolluper,
		directory:    directory,
		stats:        models.NewEmptyPrintStatistics(opts),
		groupsByUser: make(map[string][]string),
	}
}

func (s *aggregationService) Aggregate(ctx context.Context, job *models.JobRecord) error {
	groups, err := s.groupsOf(ctx, job.UserName)
	if err != nil {
		svcErr := errDirectoryLookupFailed(job.UserName, err)
		metricJobsAggregatedTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}

	s.rolluper.Rollup(s.stats, job, groups)
	metricJobsAggregatedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricPagesAggregatedTotal.Add(float64(job.Pages))
	return nil
}

func (s *aggregationService) Statistics() *models.PrintStatistics {
	return s.stats
}

func (s *aggregationService) groupsOf(ctx context.Context, user string) ([]string, error) {
	if s.stats.Groups == nil || s.directory == nil {
		return nil, nil
	}
	if groups, ok := s.groupsByUser[user]; ok {
		return groups, nil
	}

	groups, err := s.directory.GroupsOf(ctx, user)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		loggers.Ctx(ctx).Debug().Str(loggers.FieldUser, user).Msg("User belongs to no group")
	}
	s.groupsByUser[user] = groups
	metricDirectoryLookupsTotal.Inc()
	return groups, nil
}
