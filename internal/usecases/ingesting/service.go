package ingesting

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-kpi-pipeline/infrastructure/repository"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/domain"
)

// ErrRawFilesNotFound indica que os CSVs da data solicitada não existem no
// diretório de ingestão
var ErrRawFilesNotFound = errors.New("arquivos CSV da data não encontrados")

var adEventHeader = []string{
	"event_date", "event_ts", "event_type", "campaign_id", "ad_id",
	"user_id", "device_os", "country", "cost", "revenue",
}

var paymentEventHeader = []string{
	"event_date", "event_ts", "order_id", "user_id", "campaign_id",
	"amount", "currency", "status", "fail_reason",
}

// LoadResult resume uma carga de CSVs para a camada raw
type LoadResult struct {
	EventDate     string `json:"event_date"`
	AdEvents      int    `json:"ad_events"`
	PaymentEvents int    `json:"payment_events"`
}

// Loader carrega os CSVs de uma data para as tabelas raw
type Loader interface {
	LoadDate(ctx context.Context, eventDate string) (*LoadResult, error)
}

// Service implementa a interface Loader.
//
// A carga é segura para reexecução (backfill): os eventos da data são
// removidos antes da reinserção. O campo event_date dos CSVs é carregado
// como texto cru, sem parsing — a validação de data acontece só na agregação.
type Service struct {
	adEventRepo      repository.AdEventRepository
	paymentEventRepo repository.PaymentEventRepository
	rawDir           string
}

// NewService cria uma nova instância do serviço de ingestão
func NewService(
	adEventRepo repository.AdEventRepository,
	paymentEventRepo repository.PaymentEventRepository,
	rawDir string,
) *Service {
	return &Service{
		adEventRepo:      adEventRepo,
		paymentEventRepo: paymentEventRepo,
		rawDir:           rawDir,
	}
}

// LoadDate carrega ad_events_YYYYMMDD.csv e payment_events_YYYYMMDD.csv
// para as tabelas raw correspondentes
func (s *Service) LoadDate(ctx context.Context, eventDate string) (*LoadResult, error) {
	ds := strings.ReplaceAll(eventDate, "-", "")

	adPath := filepath.Join(s.rawDir, fmt.Sprintf("ad_events_%s.csv", ds))
	paymentPath := filepath.Join(s.rawDir, fmt.Sprintf("payment_events_%s.csv", ds))

	if !fileExists(adPath) || !fileExists(paymentPath) {
		return nil, errors.Wrapf(ErrRawFilesNotFound, "data %s em %s", eventDate, s.rawDir)
	}

	adEvents, err := s.readAdEvents(adPath)
	if err != nil {
		return nil, err
	}

	paymentEvents, err := s.readPaymentEvents(paymentPath)
	if err != nil {
		return nil, err
	}

	// Recarga segura: remove a data antes de reinserir
	if _, err := s.adEventRepo.DeleteByDate(ctx, eventDate); err != nil {
		return nil, errors.Wrap(err, "erro ao limpar ad_events da data")
	}
	if _, err := s.paymentEventRepo.DeleteByDate(ctx, eventDate); err != nil {
		return nil, errors.Wrap(err, "erro ao limpar payment_events da data")
	}

	if err := s.adEventRepo.BulkInsert(ctx, adEvents); err != nil {
		return nil, errors.Wrap(err, "erro ao carregar ad_events")
	}
	if err := s.paymentEventRepo.BulkInsert(ctx, paymentEvents); err != nil {
		return nil, errors.Wrap(err, "erro ao carregar payment_events")
	}

	result := &LoadResult{
		EventDate:     eventDate,
		AdEvents:      len(adEvents),
		PaymentEvents: len(paymentEvents),
	}

	logrus.WithFields(logrus.Fields{
		"event_date":     eventDate,
		"ad_events":      result.AdEvents,
		"payment_events": result.PaymentEvents,
	}).Info("CSVs carregados para a camada raw")

	return result, nil
}

func (s *Service) readAdEvents(path string) ([]*domain.AdEvent, error) {
	records, index, err := readCSV(path, "raw.ad_events", adEventHeader)
	if err != nil {
		return nil, err
	}

	events := make([]*domain.AdEvent, 0, len(records))
	for i, record := range records {
		eventTs, err := parseTimestamp(record[index["event_ts"]])
		if err != nil {
			return nil, errors.Wrapf(err, "event_ts inválido em %s linha %d", path, i+2)
		}

		cost, err := strconv.ParseFloat(record[index["cost"]], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "cost inválido em %s linha %d", path, i+2)
		}

		revenue, err := strconv.ParseFloat(record[index["revenue"]], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "revenue inválido em %s linha %d", path, i+2)
		}

		events = append(events, &domain.AdEvent{
			EventDate:  record[index["event_date"]],
			EventTs:    eventTs,
			EventType:  record[index["event_type"]],
			CampaignID: record[index["campaign_id"]],
			AdID:       record[index["ad_id"]],
			UserID:     record[index["user_id"]],
			DeviceOS:   record[index["device_os"]],
			Country:    record[index["country"]],
			Cost:       cost,
			Revenue:    revenue,
		})
	}

	return events, nil
}

func (s *Service) readPaymentEvents(path string) ([]*domain.PaymentEvent, error) {
	records, index, err := readCSV(path, "raw.payment_events", paymentEventHeader)
	if err != nil {
		return nil, err
	}

	events := make([]*domain.PaymentEvent, 0, len(records))
	for i, record := range records {
		eventTs, err := parseTimestamp(record[index["event_ts"]])
		if err != nil {
			return nil, errors.Wrapf(err, "event_ts inválido em %s linha %d", path, i+2)
		}

		amount, err := strconv.ParseFloat(record[index["amount"]], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "amount inválido em %s linha %d", path, i+2)
		}

		event := &domain.PaymentEvent{
			EventDate:  record[index["event_date"]],
			EventTs:    eventTs,
			OrderID:    record[index["order_id"]],
			UserID:     record[index["user_id"]],
			CampaignID: record[index["campaign_id"]],
			Amount:     amount,
			Currency:   record[index["currency"]],
			Status:     record[index["status"]],
		}

		if failReason := record[index["fail_reason"]]; failReason != "" {
			event.FailReason = &failReason
		}

		events = append(events, event)
	}

	return events, nil
}

// readCSV lê o arquivo inteiro e valida o cabeçalho contra as colunas
// esperadas. Coluna ausente é SchemaMismatchError — fatal, sem preenchimento
// de default. A ordem das colunas no arquivo é livre.
func readCSV(path, table string, required []string) ([][]string, map[string]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "erro ao abrir %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "erro ao ler %s", path)
	}

	if len(rows) == 0 {
		return nil, nil, &domain.SchemaMismatchError{Table: table}
	}

	index := make(map[string]int, len(rows[0]))
	for i, column := range rows[0] {
		index[strings.TrimSpace(column)] = i
	}

	for _, column := range required {
		if _, ok := index[column]; !ok {
			return nil, nil, &domain.SchemaMismatchError{Table: table, Column: column}
		}
	}

	return rows[1:], index, nil
}

func parseTimestamp(value string) (time.Time, error) {
	if ts, err := time.Parse("2006-01-02 15:04:05", value); err == nil {
		return ts, nil
	}
	return time.Parse(time.RFC3339, value)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
