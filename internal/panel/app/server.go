package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"commerceadmin_api/config"
	"commerceadmin_api/internal/panel/business/models"
	"commerceadmin_api/internal/panel/business/services"
	colsync "commerceadmin_api/internal/panel/business/sync"
	"commerceadmin_api/metrics"
	"commerceadmin_api/pkg/logger"
)

// PanelServer связывает конфигурацию, шлюз, ресурсные сервисы и
// коллекции панели; поднимает эндпоинт метрик и держит коллекции
// горячими, пока контекст жив.
type PanelServer struct {
	cfg    *config.AppConfig
	log    logger.Logger
	writer io.Writer

	ProductLines *colsync.Collection[models.ProductLine]
	Products     *colsync.Collection[models.Product]
	Orders       *colsync.Collection[models.Order]
	OrderDetails *colsync.Collection[models.OrderDetail]
}

func NewPanelServer(cfg *config.AppConfig, log logger.Logger, writer io.Writer) *PanelServer {
	return &PanelServer{cfg: cfg, log: log, writer: writer}
}

func (s *PanelServer) Run(ctx context.Context) error {
	detailSvc := services.NewOrderDetailService(s.cfg.API, s.cfg.Panel, s.writer)
	orderSvc := services.NewOrderService(s.cfg.API, s.cfg.Panel, s.writer, detailSvc)
	lineSvc := services.NewProductLineService(s.cfg.API, s.cfg.Panel, s.writer)
	productSvc := services.NewProductService(s.cfg.API, s.cfg.Panel, s.writer)

	s.ProductLines = colsync.NewCollection[models.ProductLine](lineSvc, s.log)
	s.Products = colsync.NewCollection[models.Product](productSvc, s.log)
	s.Orders = colsync.NewCollection[models.Order](orderSvc, s.log)
	s.OrderDetails = colsync.NewCollection[models.OrderDetail](detailSvc, s.log)
	defer s.closeCollections()

	s.log.Log("refreshing panel collections from %s", s.cfg.API.BaseURL)
	if err := s.refreshAll(ctx); err != nil {
		// stale-but-available: коллекции остаются рабочими, ошибка видна
		// через LastError
		s.log.Log("initial refresh finished with errors: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.MetricsHandler())
	metricsServer := &http.Server{Addr: s.cfg.MetricsAddr, Handler: mux}

	serverErr := make(chan error, 1)
	go func() {
		s.log.Log("metrics listening on %s", s.cfg.MetricsAddr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return metricsServer.Shutdown(shutdownCtx)
}

// refreshAll делает первоначальную выборку всех коллекций параллельно.
func (s *PanelServer) refreshAll(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error { return s.ProductLines.Refresh(groupCtx) })
	group.Go(func() error { return s.Products.Refresh(groupCtx) })
	group.Go(func() error { return s.Orders.Refresh(groupCtx) })
	group.Go(func() error { return s.OrderDetails.Refresh(groupCtx) })
	return group.Wait()
}

func (s *PanelServer) closeCollections() {
	s.ProductLines.Close()
	s.Products.Close()
	s.Orders.Close()
	s.OrderDetails.Close()
}
