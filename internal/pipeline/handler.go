package pipeline

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mahacyber/cyber-suraksha/internal/directory"
	"github.com/mahacyber/cyber-suraksha/internal/triage"
	"github.com/mahacyber/cyber-suraksha/pkg/common"
	"github.com/mahacyber/cyber-suraksha/pkg/validation"
)

// Handler handles HTTP requests for the complaint pipeline and the
// reference-data lookups
type Handler struct {
	service   *Service
	triage    *triage.Service
	directory *directory.Repository
}

// NewHandler creates a new pipeline handler
func NewHandler(service *Service, triageService *triage.Service, dir *directory.Repository) *Handler {
	return &Handler{
		service:   service,
		triage:    triageService,
		directory: dir,
	}
}

// SubmitReport runs the full four-stage pipeline for a complaint
func (h *Handler) SubmitReport(c *gin.Context) {
	var req SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, validation.FromBindingError(err))
		return
	}

	state, err := h.service.Run(c.Request.Context(), Input{
		Complaint:    req.Complaint,
		UTR:          req.UTR,
		BankName:     req.BankName,
		Amount:       req.Amount,
		SuspectPhone: req.SuspectPhone,
		SuspectURL:   req.SuspectURL,
		IncidentDate: req.IncidentDate,
		VictimName:   req.VictimName,
		VictimPhone:  req.VictimPhone,
	})
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to process complaint")
		return
	}

	common.SuccessResponse(c, state)
}

// Triage classifies a complaint without running the rest of the pipeline
func (h *Handler) Triage(c *gin.Context) {
	var req TriageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, validation.FromBindingError(err))
		return
	}

	result := h.triage.Analyze(c.Request.Context(), req.Complaint)
	common.SuccessResponse(c, result)
}

// CheckSuspect queries the flagged-suspect registry
func (h *Handler) CheckSuspect(c *gin.Context) {
	var req SuspectCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, validation.FromBindingError(err))
		return
	}

	check := h.directory.FindSuspect(directory.SuspectKind(req.SuspectType), req.Value)
	common.SuccessResponse(c, check)
}

// GetOfficers returns nodal-officer contacts, optionally filtered by bank
func (h *Handler) GetOfficers(c *gin.Context) {
	if bank := c.Query("bank"); bank != "" {
		officers := h.directory.FindContactsByInstitution(bank)
		if officers == nil {
			officers = []directory.Contact{}
		}
		common.SuccessResponse(c, officers)
		return
	}
	common.SuccessResponse(c, h.directory.Contacts())
}

// GetBanks returns the unique list of institutions in the directory
func (h *Handler) GetBanks(c *gin.Context) {
	common.SuccessResponse(c, h.directory.Banks())
}

// GetScamTypes returns the scam taxonomy
func (h *Handler) GetScamTypes(c *gin.Context) {
	common.SuccessResponse(c, h.directory.ScamTypes())
}
