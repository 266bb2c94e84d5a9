package repository

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"TabiMap-App/internal/domain/model"
)

// FirestoreLabelPlacementRepository Firestoreを使用したラベル配置スナップショットリポジトリ
// スナップショットはTTL付きで保存され、期限切れ後はFirestore側で削除される
type FirestoreLabelPlacementRepository struct {
	client *firestore.Client
}

// NewFirestoreLabelPlacementRepository 新しいFirestoreLabelPlacementRepositoryインスタンスを作成
func NewFirestoreLabelPlacementRepository(client *firestore.Client) *FirestoreLabelPlacementRepository {
	return &FirestoreLabelPlacementRepository{
		client: client,
	}
}

// SaveLabelPlacement はラベル配置結果をFirestoreに保存し、placement_idを生成して返す
func (r *FirestoreLabelPlacementRepository) SaveLabelPlacement(ctx context.Context, tripID string, result *model.HexagonalLabelResult, req *model.HexagonalLabelRequest, ttlHours int) (*model.LabelPlacement, error) {
	// 一時IDを生成
	placementID := fmt.Sprintf("temp_place_%s", uuid.New().String())

	placement := &model.LabelPlacement{
		PlacementID: placementID,
		TripID:      tripID,
		Labels:      result.Labels,
		HexSizeKm:   result.HexSizeKm,
		Zoom:        req.Zoom,
		Bounds:      req.Bounds,
	}

	// Firestore用の構造体に変換
	firestoreData := placement.ToFirestoreLabelPlacement(ttlHours)

	// Firestoreに保存
	_, err := r.client.Collection("labelPlacements").Doc(placementID).Set(ctx, firestoreData)
	if err != nil {
		log.Printf("❌ Failed to save label placement %s: %v", placementID, err)
		return nil, fmt.Errorf("ラベル配置の保存に失敗しました: %w", err)
	}

	log.Printf("✅ Label placement saved: %s (%d labels, expires in %d hours)", placementID, len(placement.Labels), ttlHours)
	return placement, nil
}

// GetLabelPlacement は指定されたplacement_idのラベル配置をFirestoreから取得する
func (r *FirestoreLabelPlacementRepository) GetLabelPlacement(ctx context.Context, placementID string) (*model.LabelPlacement, error) {
	doc, err := r.client.Collection("labelPlacements").Doc(placementID).Get(ctx)
	if err != nil {
		// Firestoreのエラータイプをチェック
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, fmt.Errorf("ラベル配置が見つかりません（有効期限切れまたは無効なID）: %s", placementID)
		}
		return nil, fmt.Errorf("ラベル配置の取得に失敗しました: %w", err)
	}

	var firestoreData model.FirestoreLabelPlacement
	if err := doc.DataTo(&firestoreData); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}

	log.Printf("✅ Label placement retrieved: %s", placementID)
	return firestoreData.ToLabelPlacement(placementID), nil
}
