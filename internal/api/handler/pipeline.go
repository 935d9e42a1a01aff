package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/domain"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/scheduler"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/usecases/ingesting"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/usecases/kpi"
	"github.com/vfg2006/campaign-kpi-pipeline/pkg/apiErrors"
	"github.com/vfg2006/campaign-kpi-pipeline/pkg/log"
	"github.com/vfg2006/campaign-kpi-pipeline/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PipelineServices agrupa os serviços necessários para as rotas do pipeline
type PipelineServices struct {
	SyncService *scheduler.KPIPipelineSyncService
	Builder     kpi.Builder
	Loader      ingesting.Loader
}

// RunPipeline dispara manualmente uma reconstrução da tabela mart
func RunPipeline(services PipelineServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - RunPipeline")

		if services.SyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de agendamento do pipeline não disponível", nil)
			return
		}

		if err := services.SyncService.TriggerManualSync(); err != nil {
			if errors.Is(err, domain.ErrPipelineRunning) {
				apiErrors.WriteError(w, apiErrors.ErrPipelineRunning, "Execução do pipeline já em andamento", nil)
				return
			}

			logger.WithError(err).Error("Erro ao disparar execução manual do pipeline")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		w.WriteHeader(http.StatusAccepted)
		response := map[string]any{
			"message": "Execução do pipeline iniciada com sucesso",
		}
		json.NewEncoder(w).Encode(response)
	})
}

// GetPipelineStatus retorna o status atual do agendador do pipeline
func GetPipelineStatus(services PipelineServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - GetPipelineStatus")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(services.SyncService.GetStatus())
	})
}

// ListPipelineRuns retorna o histórico recente de execuções do pipeline
func ListPipelineRuns(services PipelineServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit := 20
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		runs, err := services.Builder.ListRuns(r.Context(), limit)
		if err != nil {
			logger.WithError(err).Error("Erro ao listar histórico de execuções do pipeline")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(runs); err != nil {
			logger.WithError(err).Error("Erro ao serializar histórico de execuções")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// LoadRawDate carrega os CSVs de uma data para as tabelas raw
func LoadRawDate(services PipelineServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date := httprouter.ParamsFromContext(r.Context()).ByName("date")
		if _, err := utils.ParseDate(date); err != nil {
			logger.WithField("date", date).Warn("Data inválida para carga de CSVs")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, esperado YYYY-MM-DD", nil)
			return
		}

		logger.WithField("date", date).Info("INIT - LoadRawDate")

		result, err := services.Loader.LoadDate(r.Context(), date)
		if err != nil {
			logger.WithFields(log.Fields{
				"date":  date,
				"error": err.Error(),
			}).Error("Erro ao carregar CSVs para a camada raw")

			var schemaErr *domain.SchemaMismatchError
			switch {
			case errors.Is(err, ingesting.ErrRawFilesNotFound):
				apiErrors.WriteError(w, apiErrors.ErrRawFilesNotFound, err.Error(), nil)
			case errors.As(err, &schemaErr):
				apiErrors.WriteError(w, apiErrors.ErrSchemaMismatch, err.Error(), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	})
}
