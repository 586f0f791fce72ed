package resolve_approval

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/faithworks/FWS-ReservationService/internal/api/handlers"
	resolveApproval "github.com/faithworks/FWS-ReservationService/internal/usecase/resolve_approval"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidApprovalID      = "некорректный идентификатор запроса на согласование"
	msgRequestNotFound        = "запрос на согласование не найден"
	msgReviewerNotFound       = "ревьюер не найден"
	msgNotAuthorized          = "ревьюер не вправе согласовывать запросы этого типа"
	msgCommentRequired        = "отклонение требует комментария с причиной"
	msgInvalidStateTransition = "запрос уже в терминальном статусе"
	msgConflictAtApproval     = "слот занят подтверждённым бронированием, согласование невозможно"
)

type Handler struct {
	useCase ResolveApprovalUseCase
	logger  Logger
}

func NewHandler(useCase ResolveApprovalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleApprove POST /api/v1/approvals/{id}/approve
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, resolveApproval.ActionApprove)
}

// HandleReject POST /api/v1/approvals/{id}/reject
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, resolveApproval.ActionReject)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, action resolveApproval.Action) {
	approvalID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /approvals/{id}/%s - invalid approval id: %v", action, err)
		handlers.RespondBadRequest(w, msgInvalidApprovalID)
		return
	}

	var req ResolveApprovalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /approvals/{id}/%s - invalid request body: %v", action, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &resolveApproval.Request{
		ApprovalID: approvalID,
		ReviewerID: req.ReviewerID,
		Action:     action,
		Comment:    req.Comment,
	})
	if err != nil {
		var conflict *resolveApproval.ApprovalConflictError

		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /approvals/{id}/%s - conflict at approval: id=%d, event=%q",
				action, approvalID, conflict.EventTitle)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:            msgConflictAtApproval,
				ConflictingEvent: conflict.EventTitle,
				StartTime:        conflict.StartTime.String(),
				EndTime:          conflict.EndTime.String(),
			})

		case errors.Is(err, resolveApproval.ErrInvalidStateTransition):
			h.logger.Warn("POST /approvals/{id}/%s - invalid state transition: id=%d", action, approvalID)
			handlers.RespondConflict(w, msgInvalidStateTransition)

		case errors.Is(err, resolveApproval.ErrCommentRequired):
			h.logger.Warn("POST /approvals/{id}/%s - comment required: id=%d", action, approvalID)
			handlers.RespondBadRequest(w, msgCommentRequired)

		case errors.Is(err, resolveApproval.ErrRequestNotFound):
			h.logger.Warn("POST /approvals/{id}/%s - not found: id=%d", action, approvalID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, resolveApproval.ErrReviewerNotFound):
			h.logger.Warn("POST /approvals/{id}/%s - reviewer not found: reviewer=%d", action, req.ReviewerID)
			handlers.RespondNotFound(w, msgReviewerNotFound)

		case errors.Is(err, resolveApproval.ErrNotAuthorized):
			h.logger.Warn("POST /approvals/{id}/%s - not authorized: reviewer=%d", action, req.ReviewerID)
			handlers.RespondForbidden(w, msgNotAuthorized)

		case errors.Is(err, resolveApproval.ErrInvalidInput):
			h.logger.Warn("POST /approvals/{id}/%s - invalid input: %v", action, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /approvals/{id}/%s - failed: id=%d, error=%v", action, approvalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /approvals/{id}/%s - resolved: id=%d, status=%s, reviewer=%d",
		action, result.ID, result.Status, result.ReviewedBy)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
