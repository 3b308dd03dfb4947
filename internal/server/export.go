package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/talentform/docextract/constants"
	extractionpb "github.com/talentform/docextract/gen/proto/extraction/v1"
	"github.com/talentform/docextract/internal/common"
	"github.com/talentform/docextract/internal/export"
)

type ExportServer struct {
	extractionpb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportExtractions(ctx context.Context, req *extractionpb.ExportExtractionsRequest) (*extractionpb.ExportExtractionsResponse, error) {
	ownerID := strings.TrimSpace(req.GetOwnerId())
	if ownerID == "" {
		return nil, common.InvalidArgumentError("owner_id is required")
	}
	docTypeFilter := ""
	if dt := strings.TrimSpace(req.GetDocumentType()); dt != "" {
		parsed, ok := constants.ParseDocumentType(dt)
		if !ok {
			return nil, common.InvalidArgumentErrorf("document_type must be one of cv, jd; got %q", dt)
		}
		docTypeFilter = string(parsed)
	}

	xlsx, err := s.svc.ExportRecordsXLSX(ctx, ownerID, docTypeFilter)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "owner_id", ownerID, "err", err)
		return nil, common.InternalError(err.Error())
	}

	return &extractionpb.ExportExtractionsResponse{Xlsx: xlsx}, nil
}
