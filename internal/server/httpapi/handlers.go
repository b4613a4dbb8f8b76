package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmarques/despesas/internal/common"
	"github.com/go-chi/chi/v5"
)

// Request/response DTOs keep the wire field names the mobile client already
// sends. The canonical password field is "senha" on both register and login.
type registerRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type userSummary struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

type loginResponse struct {
	Status  string      `json:"status"`
	Token   string      `json:"token"`
	Usuario userSummary `json:"usuario"`
}

type expenseRequest struct {
	Titulo string  `json:"titulo"`
	Valor  float64 `json:"valor"`
	Tipo   string  `json:"tipo"`
	Data   string  `json:"data"`
}

type expenseResponse struct {
	ID     int64   `json:"id"`
	Titulo string  `json:"titulo"`
	Valor  float64 `json:"valor"`
	Tipo   string  `json:"tipo"`
	Data   string  `json:"data"`
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "backend funcionando"})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Requisição inválida.")
		return
	}

	user, err := s.users.Register(r.Context(), req.Nome, req.Email, req.Senha)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "user_id", user.ID)
	writeOK(w, http.StatusCreated, "Usuário criado com sucesso!")
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Requisição inválida.")
		return
	}

	result, err := s.users.Login(r.Context(), req.Email, req.Senha)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, "E-mail ou senha inválido")
			return
		}
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Status: "ok",
		Token:  result.Token,
		Usuario: userSummary{
			ID:   result.User.ID,
			Nome: result.User.Name,
		},
	})
}

func (s *Server) listExpenses(w http.ResponseWriter, r *http.Request) {

	identity, ok := identityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token de acesso ausente.")
		return
	}

	list, err := s.expenses.List(r.Context(), identity.UserID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	resp := make([]expenseResponse, 0, len(list))
	for _, e := range list {
		resp = append(resp, expenseResponse{
			ID:     e.ID,
			Titulo: e.Title,
			Valor:  e.Amount,
			Tipo:   e.Category,
			Data:   e.Date,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) createExpense(w http.ResponseWriter, r *http.Request) {

	identity, ok := identityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token de acesso ausente.")
		return
	}

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Requisição inválida.")
		return
	}

	_, err := s.expenses.Add(r.Context(), identity.UserID, req.Titulo, req.Valor, req.Tipo, req.Data)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeError(w, http.StatusBadRequest, "Título e data são obrigatórios.")
			return
		}
		s.logger.Error(r.Context(), "create expense failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Erro ao adicionar gasto.")
		return
	}

	writeOK(w, http.StatusCreated, "Gasto adicionado com sucesso!")
}

func (s *Server) deleteExpense(w http.ResponseWriter, r *http.Request) {

	identity, ok := identityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token de acesso ausente.")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Identificador inválido.")
		return
	}

	if err := s.expenses.Delete(r.Context(), identity.UserID, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Gasto não encontrado.")
			return
		}
		s.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeServiceError maps service errors to status codes. Anything unexpected
// is logged and reported as a generic internal error; no detail leaks to the
// client.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		writeError(w, http.StatusBadRequest, "Campos obrigatórios ausentes.")
	case errors.Is(err, common.ErrorEmailTaken):
		writeError(w, http.StatusConflict, "Este e-mail já está em uso.")
	case errors.Is(err, common.ErrorUnauthorized):
		writeError(w, http.StatusUnauthorized, "Não autorizado.")
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, "Registro não encontrado.")
	default:
		s.logger.Error(r.Context(), "internal error", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Erro interno do servidor.")
	}
}
