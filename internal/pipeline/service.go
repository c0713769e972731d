package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mahacyber/cyber-suraksha/internal/directory"
	"github.com/mahacyber/cyber-suraksha/internal/evidence"
	"github.com/mahacyber/cyber-suraksha/internal/report"
	"github.com/mahacyber/cyber-suraksha/internal/routing"
	"github.com/mahacyber/cyber-suraksha/internal/triage"
	"github.com/mahacyber/cyber-suraksha/pkg/logger"
	"go.uber.org/zap"
)

// Stage names in execution order
const (
	StageTriage   = "triage"
	StageEvidence = "evidence"
	StageRouting  = "router"
	StageReport   = "reporter"
)

// stage is one step of the pipeline. Stages absorb their anticipated
// failures internally; a returned error means an unexpected fault that
// terminates the request.
type stage struct {
	name string
	run  func(ctx context.Context, cs *CaseState) error
}

// Service runs the four-stage complaint pipeline. The stage order is a plain
// list: transitions are linear and unconditional, every stage runs exactly
// once per case.
type Service struct {
	triage   *triage.Service
	evidence *evidence.Service
	routing  *routing.Service
	report   *report.Service
	stages   []stage
}

// NewService creates a new pipeline service
func NewService(t *triage.Service, e *evidence.Service, r *routing.Service, rep *report.Service) *Service {
	s := &Service{
		triage:   t,
		evidence: e,
		routing:  r,
		report:   rep,
	}
	s.stages = []stage{
		{StageTriage, s.runTriage},
		{StageEvidence, s.runEvidence},
		{StageRouting, s.runRouting},
		{StageReport, s.runReport},
	}
	return s
}

// Run executes the pipeline for one complaint. The returned state always
// carries all four sections, degraded where a stage fell back; the error is
// non-nil only for faults outside the stages' documented fallback scope.
func (s *Service) Run(ctx context.Context, in Input) (*CaseState, error) {
	if in.IncidentDate == "" {
		in.IncidentDate = time.Now().Format("2006-01-02")
	}

	cs := &CaseState{
		CaseID: uuid.New(),
		Input:  in,
	}

	pipelineRunsTotal.Inc()
	log := logger.WithContext(ctx).With(zap.String("case_id", cs.CaseID.String()))

	for _, st := range s.stages {
		cs.CurrentStage = st.name
		if err := st.run(ctx, cs); err != nil {
			cs.Error = err.Error()
			log.Error("Pipeline stage failed", zap.String("stage", st.name), zap.Error(err))
			return cs, err
		}
		log.Debug("Pipeline stage completed", zap.String("stage", st.name))
	}

	cs.WorkflowComplete = true
	log.Info("Pipeline completed",
		zap.String("scam_type", cs.Triage.ScamType),
		zap.Int("evidence_score", cs.Evidence.Score),
		zap.Bool("routing_success", cs.Routing.Success))

	return cs, nil
}

func (s *Service) runTriage(ctx context.Context, cs *CaseState) error {
	cs.Triage = s.triage.Analyze(ctx, cs.Complaint)
	if cs.Triage.UsedFallback {
		stageFallbacksTotal.WithLabelValues(StageTriage).Inc()
	}
	if cs.Triage.Error != "" && cs.Error == "" {
		cs.Error = cs.Triage.Error
	}
	cs.TriageComplete = true
	return nil
}

func (s *Service) runEvidence(ctx context.Context, cs *CaseState) error {
	cs.Evidence = s.evidence.Collect(evidence.Input{
		UTR:          cs.UTR,
		BankName:     cs.BankName,
		SuspectPhone: cs.SuspectPhone,
		SuspectURL:   cs.SuspectURL,
		Amount:       cs.Amount,
	})

	// Propagate an inferred institution for the routing stage; a supplied
	// bank name is never overwritten
	if cs.BankName == "" && cs.Evidence.BankName != "" {
		cs.BankName = cs.Evidence.BankName
	}

	cs.EvidenceComplete = true
	return nil
}

func (s *Service) runRouting(ctx context.Context, cs *CaseState) error {
	urgency := directory.UrgencyMedium
	if cs.Triage != nil && cs.Triage.Urgency.IsValid() {
		urgency = cs.Triage.Urgency
	}

	cs.Routing = s.routing.Route(cs.BankName, urgency)
	cs.RoutingComplete = true
	return nil
}

func (s *Service) runReport(ctx context.Context, cs *CaseState) error {
	scamType := "other"
	if cs.Triage != nil && cs.Triage.ScamType != "" {
		scamType = cs.Triage.ScamType
	}

	evidenceScore := 50
	if cs.Evidence != nil {
		evidenceScore = cs.Evidence.Score
	}

	cs.Report = s.report.Assemble(ctx, report.CaseDetails{
		Complaint:     cs.Complaint,
		ScamType:      scamType,
		Amount:        cs.Amount,
		UTR:           cs.UTR,
		BankName:      cs.BankName,
		SuspectPhone:  cs.SuspectPhone,
		SuspectURL:    cs.SuspectURL,
		IncidentDate:  cs.IncidentDate,
		VictimName:    cs.VictimName,
		VictimPhone:   cs.VictimPhone,
		EvidenceScore: evidenceScore,
	})
	if cs.Report.UsedFallback {
		stageFallbacksTotal.WithLabelValues(StageReport).Inc()
	}

	cs.ReportComplete = true
	return nil
}
