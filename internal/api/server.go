package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/fluterlabs/reward-escrow/internal/config"
	"github.com/fluterlabs/reward-escrow/internal/db"
	"github.com/fluterlabs/reward-escrow/internal/db/model"
	"github.com/fluterlabs/reward-escrow/internal/observability/metrics"
	"github.com/fluterlabs/reward-escrow/internal/types"
)

// Server exposes read-only views of the escrow lock records over HTTP.
// Writes go through the Service; the API never moves funds.
type Server struct {
	cfg     *config.APIConfig
	db      db.DbInterface
	httpSrv *http.Server
}

func New(cfg *config.APIConfig, dbClient db.DbInterface) *Server {
	s := &Server{
		cfg: cfg,
		db:  dbClient,
	}

	r := chi.NewRouter()
	r.Get("/healthcheck", s.healthCheck)
	r.Get("/v1/escrows", s.listEscrows)
	r.Get("/v1/escrows/{mainAsset}/{minter}", s.getEscrow)

	s.httpSrv = &http.Server{
		Addr:         cfg.Address(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) Start() error {
	log.Info().Str("address", s.cfg.Address()).Msg("starting escrow API server")
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start escrow API server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// EscrowLockResponse is the public projection of a stored lock. State is the
// reported state, so a drained but still open lock shows as DEPLETED.
type EscrowLockResponse struct {
	MainAsset            string `json:"main_asset"`
	RewardAsset          string `json:"reward_asset"`
	Minter               string `json:"minter"`
	State                string `json:"state"`
	TotalRewardValue     uint64 `json:"total_reward_value"`
	RemainingRewardValue uint64 `json:"remaining_reward_value"`
	ValuePerShard        uint64 `json:"value_per_shard"`
	TotalMainSupply      uint64 `json:"total_main_supply"`
	BurnedTokenAmount    uint64 `json:"burned_token_amount"`
	CreatedAt            int64  `json:"created_at"`
	ExpiresAt            int64  `json:"expires_at"`
}

type errorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	timer := metrics.StartAPIRequestDurationTimer("/healthcheck")

	if err := s.db.Ping(r.Context()); err != nil {
		timer(http.StatusServiceUnavailable)
		writeError(w, http.StatusServiceUnavailable, types.InternalServiceError, "database unreachable")
		return
	}

	timer(http.StatusOK)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getEscrow(w http.ResponseWriter, r *http.Request) {
	timer := metrics.StartAPIRequestDurationTimer("/v1/escrows/{mainAsset}/{minter}")

	mainAsset := chi.URLParam(r, "mainAsset")
	minter := chi.URLParam(r, "minter")

	lockDoc, err := s.db.GetEscrowLock(r.Context(), mainAsset, minter)
	if err != nil {
		if db.IsNotFoundError(err) {
			timer(http.StatusNotFound)
			writeError(w, http.StatusNotFound, types.EscrowNotFound, "escrow lock not found")
			return
		}
		log.Error().Err(err).Str("main_asset", mainAsset).Msg("failed to load escrow lock")
		timer(http.StatusInternalServerError)
		writeError(w, http.StatusInternalServerError, types.InternalServiceError, "internal server error")
		return
	}

	timer(http.StatusOK)
	writeJSON(w, http.StatusOK, toEscrowLockResponse(lockDoc))
}

func (s *Server) listEscrows(w http.ResponseWriter, r *http.Request) {
	timer := metrics.StartAPIRequestDurationTimer("/v1/escrows")

	mainAsset := r.URL.Query().Get("main_asset")
	if mainAsset == "" {
		timer(http.StatusBadRequest)
		writeError(w, http.StatusBadRequest, types.ValidationError, "main_asset query parameter is required")
		return
	}

	lockDocs, err := s.db.GetEscrowLocksByMainAsset(r.Context(), mainAsset)
	if err != nil {
		log.Error().Err(err).Str("main_asset", mainAsset).Msg("failed to list escrow locks")
		timer(http.StatusInternalServerError)
		writeError(w, http.StatusInternalServerError, types.InternalServiceError, "internal server error")
		return
	}

	resp := make([]EscrowLockResponse, 0, len(lockDocs))
	for i := range lockDocs {
		resp = append(resp, toEscrowLockResponse(&lockDocs[i]))
	}

	timer(http.StatusOK)
	writeJSON(w, http.StatusOK, resp)
}

func toEscrowLockResponse(lockDoc *model.EscrowLockDocument) EscrowLockResponse {
	return EscrowLockResponse{
		MainAsset:            lockDoc.MainAsset,
		RewardAsset:          lockDoc.RewardAsset,
		Minter:               lockDoc.Minter,
		State:                types.ReportedState(lockDoc.State, lockDoc.RemainingRewardValue).String(),
		TotalRewardValue:     lockDoc.TotalRewardValue,
		RemainingRewardValue: lockDoc.RemainingRewardValue,
		ValuePerShard:        lockDoc.ValuePerShard,
		TotalMainSupply:      lockDoc.TotalMainSupply,
		BurnedTokenAmount:    lockDoc.BurnedTokenAmount,
		CreatedAt:            lockDoc.CreatedAt,
		ExpiresAt:            lockDoc.ExpiresAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, code types.ErrorCode, msg string) {
	writeJSON(w, status, errorResponse{
		ErrorCode: string(code),
		Message:   msg,
	})
}
