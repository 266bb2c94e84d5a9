package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"TabiMap-App/internal/domain/model"
	"TabiMap-App/internal/domain/repository"
	"TabiMap-App/internal/domain/service"
	repoImpl "TabiMap-App/internal/repository"
)

// placementTTLHours 保存したラベル配置スナップショットの有効期限
const placementTTLHours = 2

type LabelPlacementUseCase interface {
	// CalculateLabels はリクエストに基づいてラベル配置を計算して返す（保存なし）
	CalculateLabels(ctx context.Context, req *model.HexagonalLabelRequest) (*model.HexagonalLabelResult, error)

	// SavePlacement はラベル配置を計算してFirestoreにTTL付きで保存する
	SavePlacement(ctx context.Context, req *model.HexagonalLabelRequest) (*model.LabelPlacement, error)

	// GetPlacement は指定されたplacement_idのラベル配置をFirestoreから取得する
	GetPlacement(ctx context.Context, placementID string) (*model.LabelPlacement, error)
}

// labelPlacementUseCaseImpl はLabelPlacementUseCaseの実装
type labelPlacementUseCaseImpl struct {
	labelService  service.HexagonalLabelService
	locationsRepo repository.LocationsRepository
	firestoreRepo *repoImpl.FirestoreLabelPlacementRepository
}

// NewLabelPlacementUseCase は新しいLabelPlacementUseCaseインスタンスを作成
func NewLabelPlacementUseCase(
	labelService service.HexagonalLabelService,
	locationsRepo repository.LocationsRepository,
	firestoreRepo *repoImpl.FirestoreLabelPlacementRepository,
) LabelPlacementUseCase {
	return &labelPlacementUseCaseImpl{
		labelService:  labelService,
		locationsRepo: locationsRepo,
		firestoreRepo: firestoreRepo,
	}
}

// CalculateLabels はリクエストに基づいてラベル配置を計算して返す
func (u *labelPlacementUseCaseImpl) CalculateLabels(ctx context.Context, req *model.HexagonalLabelRequest) (*model.HexagonalLabelResult, error) {
	locations, err := u.resolveLocations(ctx, req)
	if err != nil {
		return nil, err
	}

	result := u.labelService.CalculateHexagonalLabels(
		locations, *req.Bounds, req.Zoom, req.ViewportHeightPx, req.MarkerColors)

	log.Printf("🏷️ ラベル配置計算完了 (地点: %d, ラベル: %d, セル半径: %.1fkm)",
		len(locations), len(result.Labels), result.HexSizeKm)

	return result, nil
}

// SavePlacement はラベル配置を計算してFirestoreにTTL付きで保存する
func (u *labelPlacementUseCaseImpl) SavePlacement(ctx context.Context, req *model.HexagonalLabelRequest) (*model.LabelPlacement, error) {
	result, err := u.CalculateLabels(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Printf("💾 Firestore保存中...")
	placement, err := u.firestoreRepo.SaveLabelPlacement(ctx, req.TripID, result, req, placementTTLHours)
	if err != nil {
		return nil, fmt.Errorf("Firestore保存に失敗: %w", err)
	}

	return placement, nil
}

// GetPlacement は指定されたplacement_idのラベル配置をFirestoreから取得する
func (u *labelPlacementUseCaseImpl) GetPlacement(ctx context.Context, placementID string) (*model.LabelPlacement, error) {
	placement, err := u.firestoreRepo.GetLabelPlacement(ctx, placementID)
	if err != nil {
		return nil, fmt.Errorf("ラベル配置の取得に失敗: %w", err)
	}

	return placement, nil
}

// resolveLocations リクエストから計算対象の地点リストを決定する
// Locationsが直接渡されていればそれを使い、trip_id指定時はDBから登録順で取得する
func (u *labelPlacementUseCaseImpl) resolveLocations(ctx context.Context, req *model.HexagonalLabelRequest) ([]*model.Location, error) {
	if len(req.Locations) > 0 {
		return req.Locations, nil
	}

	if req.TripID == "" {
		// どちらも無い場合は空の結果を返させる（エラーにしない）
		return []*model.Location{}, nil
	}

	if u.locationsRepo == nil {
		return nil, errors.New("地点リポジトリが設定されていません")
	}

	locations, err := u.locationsRepo.GetByTripID(ctx, req.TripID)
	if err != nil {
		return nil, fmt.Errorf("旅程の地点取得に失敗: %w", err)
	}

	return locations, nil
}
