package database

import (
	"fmt"
	"log"
	"os"

	"github.com/supabase-community/supabase-go"
)

// SupabaseClient 旅程テーブル(trips)へアクセスするSupabaseクライアントのラッパー
type SupabaseClient struct {
	client *supabase.Client
}

// NewSupabaseClient 環境変数からSupabaseクライアントを作成
// SUPABASE_URLとSUPABASE_ANON_KEYの両方が必要
func NewSupabaseClient() (*SupabaseClient, error) {
	url := os.Getenv("SUPABASE_URL")
	anonKey := os.Getenv("SUPABASE_ANON_KEY")

	if url == "" {
		return nil, fmt.Errorf("SUPABASE_URL環境変数が設定されていません")
	}
	if anonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY環境変数が設定されていません")
	}

	client, err := supabase.NewClient(url, anonKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("Supabaseクライアントの初期化に失敗: %w", err)
	}

	return &SupabaseClient{client: client}, nil
}

// GetClient 内部のSupabaseクライアントを取得
func (sc *SupabaseClient) GetClient() *supabase.Client {
	return sc.client
}

// HealthCheck クライアントが利用可能な状態か確認する
// PostgRESTへの実クエリは発行せず、初期化済みかどうかだけを見る
func (sc *SupabaseClient) HealthCheck() error {
	if sc.client == nil {
		return fmt.Errorf("Supabaseクライアントが初期化されていません")
	}

	log.Printf("✅ Supabaseクライアント確認済み (URL: %s)", os.Getenv("SUPABASE_URL"))
	return nil
}
