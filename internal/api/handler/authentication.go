package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-data-generator/internal/domain"
	"github.com/vfg2006/sales-data-generator/internal/usecases/authenticating"
	"github.com/vfg2006/sales-data-generator/pkg/apiErrors"
	"github.com/vfg2006/sales-data-generator/pkg/log"
)

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token": token,
		})
	}
}

// handleLoginError traduz erros de login para a resposta da API
func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithField("error", err.Error()).Warn("Falha no login")

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Err.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
}
