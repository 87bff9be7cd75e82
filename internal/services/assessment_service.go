package services

import (
	"errors"
	"time"

	"github.com/AndersonLongara/AltraFitness-sub001/internal/bodycomp"
	"github.com/AndersonLongara/AltraFitness-sub001/internal/fixedpoint"
	"github.com/AndersonLongara/AltraFitness-sub001/internal/logging"
	"github.com/AndersonLongara/AltraFitness-sub001/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type IDGenerator interface {
	NewID() string
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

// AssessmentRecord is a computed assessment in both representations.
type AssessmentRecord struct {
	Assessment bodycomp.Assessment
	Stored     models.StoredAssessment
}

type AssessmentService struct {
	logger *zap.Logger
	ids    IDGenerator
	now    func() time.Time
}

// NewAssessmentService wires the service. Nil arguments fall back to a no-op
// logger, random UUIDs, and the wall clock.
func NewAssessmentService(logger *zap.Logger, ids IDGenerator, now func() time.Time) *AssessmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ids == nil {
		ids = uuidGenerator{}
	}
	if now == nil {
		now = time.Now
	}
	return &AssessmentService{
		logger: logger,
		ids:    ids,
		now:    now,
	}
}

func (s *AssessmentService) Assess(
	protocol bodycomp.Protocol,
	input bodycomp.MeasurementInput,
) (*AssessmentRecord, error) {
	if !protocol.Valid() {
		return nil, ErrInvalidInput
	}

	result := bodycomp.Compute(input, protocol)
	stored := fixedpoint.EncodeAssessment(protocol, input, result)
	stored.ID = s.ids.NewID()
	stored.RecordedAt = s.now().UTC()

	logger := logging.WithAssessmentID(s.logger, stored.ID)
	s.warnDegenerate(logger, protocol, input, result)
	logger.Info("assessment computed",
		zap.String("protocol", protocol.String()),
		zap.Float64("body_fat_percent", result.BodyFatPercent),
		zap.Bool("has_density", result.BodyDensity != nil),
	)

	return &AssessmentRecord{
		Assessment: bodycomp.Assessment{
			Protocol: protocol,
			Input:    input,
			Result:   result,
		},
		Stored: stored,
	}, nil
}

func (s *AssessmentService) Restore(stored models.StoredAssessment) bodycomp.Assessment {
	assessment := fixedpoint.DecodeAssessment(stored)
	if !assessment.Protocol.Valid() {
		s.logger.Warn("stored assessment has unknown protocol",
			zap.String("assessment_id", stored.ID),
			zap.String("protocol", stored.Protocol),
		)
	}
	return assessment
}

func (s *AssessmentService) Compare(prev, next models.StoredAssessment) bodycomp.Progress {
	return bodycomp.Compare(s.Restore(prev), s.Restore(next))
}

// warnDegenerate surfaces the silent fallbacks: a Guedes bundle with nothing to
// sum, and a 0% body-fat that makes Katch-McArdle treat all weight as lean.
func (s *AssessmentService) warnDegenerate(
	logger *zap.Logger,
	protocol bodycomp.Protocol,
	input bodycomp.MeasurementInput,
	result bodycomp.Result,
) {
	if protocol == bodycomp.Guedes && input.Skinfolds.Sum(protocol.Sites(input.Gender)...) <= 0 {
		logger.Warn("guedes skinfold sum is zero; density defaulted to 0")
	}
	if result.BodyFatPercent == 0 {
		logger.Warn("body fat is 0; katch-mcardle uses total weight as lean mass",
			zap.Float64("bmr_katch_mcardle", result.BMRKatchMcArdle),
		)
	}
}
