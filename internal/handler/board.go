package handler

import (
	"log/slog"
	"net/http"

	"workboard/internal/domain/services"
	"workboard/internal/httputil"
)

// BoardHandler handles board HTTP requests
type BoardHandler struct {
	boardService services.BoardService
	logger       *slog.Logger
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(boardService services.BoardService, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
		logger:       logger,
	}
}

// ListBoards lists boards the caller owns or holds assignments on
// GET /api/boards
func (h *BoardHandler) ListBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.boardService.ListBoards(r.Context(), httputil.GetUserID(r))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newBoardResponses(boards))
}

// CreateBoard creates a board owned by the caller
// POST /api/boards
func (h *BoardHandler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var req services.CreateBoardRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		badBody(w)
		return
	}

	board, err := h.boardService.CreateBoard(r.Context(), httputil.GetUserID(r), &req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, newBoardResponse(board))
}

// GetBoard retrieves a board
// GET /api/boards/{id}
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.boardService.GetBoard(r.Context(), httputil.GetUserID(r), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newBoardResponse(board))
}

// updateBoardBody distinguishes absent fields from explicit nulls
type updateBoardBody struct {
	Name        httputil.OptionalString `json:"name"`
	Description httputil.OptionalString `json:"description"`
}

// UpdateBoard partially updates a board
// PATCH /api/boards/{id}
func (h *BoardHandler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	var body updateBoardBody
	if err := httputil.ParseJSON(w, r, &body); err != nil {
		badBody(w)
		return
	}

	if err := rejectNulls(map[string]httputil.OptionalString{"name": body.Name}); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	req := &services.UpdateBoardRequest{
		Name:        body.Name.Ptr(),
		Description: body.Description.Ptr(),
	}
	if body.Description.IsNull() {
		empty := ""
		req.Description = &empty
	}

	board, err := h.boardService.UpdateBoard(r.Context(), httputil.GetUserID(r), r.PathValue("id"), req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newBoardResponse(board))
}

// DeleteBoard removes a board and its tasks
// DELETE /api/boards/{id}
func (h *BoardHandler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	if err := h.boardService.DeleteBoard(r.Context(), httputil.GetUserID(r), r.PathValue("id")); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondNoContent(w)
}
