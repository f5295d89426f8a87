package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/assetrack/assetrack/internal/config"
)

func (u Usecase) GetTempUploadURL(ctx context.Context, name string) (string, error) {
	actorID, ok := ctx.Value(config.CTX_KEY_ACTOR_ID).(string)
	if !ok || actorID == "" {
		return "", fmt.Errorf("actor id not found in context")
	}
	path := fmt.Sprintf("%s-%d/%s", actorID, time.Now().Unix(), name)
	return u.fileStorageProvider.GetTempUploadURL(ctx, path)
}
