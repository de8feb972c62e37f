package httpserver

import (
	"context"
	"time"

	"callaudit-srv/internal/analysis"
	analysisHTTP "callaudit-srv/internal/analysis/delivery/http"
	analysisProducer "callaudit-srv/internal/analysis/delivery/kafka/producer"
	analysisUsecase "callaudit-srv/internal/analysis/usecase"
	checklistHTTP "callaudit-srv/internal/checklist/delivery/http"
	checklistUsecase "callaudit-srv/internal/checklist/usecase"
	managerHTTP "callaudit-srv/internal/manager/delivery/http"
	managerUsecase "callaudit-srv/internal/manager/usecase"
	"callaudit-srv/internal/report"
	"callaudit-srv/internal/transcript"
	transcriptHTTP "callaudit-srv/internal/transcript/delivery/http"
	"callaudit-srv/internal/transcript/repository"
	transcriptRedis "callaudit-srv/internal/transcript/repository/redis"
	transcriptUsecase "callaudit-srv/internal/transcript/usecase"
	"callaudit-srv/pkg/minio"
)

func (srv *HTTPServer) setupChecklistDomain(ctx context.Context) checklistHTTP.Handler {
	uc := checklistUsecase.New(srv.l, srv.store)
	h := checklistHTTP.New(srv.l, uc, srv.discord, srv.config.Upload.MaxBytes())

	srv.l.Infof(ctx, "Checklist domain registered")
	return h
}

func (srv *HTTPServer) setupManagerDomain(ctx context.Context) managerHTTP.Handler {
	uc := managerUsecase.New(srv.l, srv.store)
	h := managerHTTP.New(srv.l, uc, srv.discord)

	srv.l.Infof(ctx, "Manager domain registered")
	return h
}

// setupTranscriptDomain returns the usecase too; analysis resolves pasted text through it.
func (srv *HTTPServer) setupTranscriptDomain(ctx context.Context) (transcript.UseCase, transcriptHTTP.Handler) {
	var cache repository.CacheRepository
	if srv.redis != nil {
		cache = transcriptRedis.New(srv.redis, srv.l)
	}
	var uploader minio.FileUploader
	if srv.minio != nil {
		uploader = srv.minio
	}

	uc := transcriptUsecase.New(srv.l, srv.gateway, srv.store, cache, uploader, transcriptUsecase.Config{
		Bucket:   srv.config.MinIO.Bucket,
		CacheTTL: time.Duration(srv.config.Redis.TTLS) * time.Second,
	})
	h := transcriptHTTP.New(srv.l, uc, srv.discord, srv.config.Upload.MaxBytes())

	srv.l.Infof(ctx, "Transcript domain registered (cache=%t, archive=%t)", cache != nil, uploader != nil)
	return uc, h
}

func (srv *HTTPServer) setupAnalysisDomain(ctx context.Context, transcriptUC transcript.UseCase) analysisHTTP.Handler {
	renderer := report.New(srv.l, report.Config{FontPath: srv.config.PDF.FontPath})

	var producer analysis.Producer
	if srv.producer != nil {
		producer = analysisProducer.New(srv.l, srv.producer)
	}

	uc := analysisUsecase.New(srv.l, srv.gateway, srv.store, transcriptUC, renderer, producer)
	h := analysisHTTP.New(srv.l, uc, srv.discord)

	srv.l.Infof(ctx, "Analysis domain registered (events=%t)", producer != nil)
	return h
}
