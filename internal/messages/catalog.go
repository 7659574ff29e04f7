package messages

import "fooddelivery/internal/pkg/rpc"

const (
	KindMerchantAddProduct               rpc.Kind = "MerchantAddProduct"
	KindMerchantRemoveProduct            rpc.Kind = "MerchantRemoveProduct"
	KindFetchProductsByMerchantID        rpc.Kind = "FetchProductsByMerchantID"
	KindFetchProductsByNameAndMerchantID rpc.Kind = "FetchProductsByNameAndMerchantID"
)

func init() {
	for _, kind := range []rpc.Kind{
		KindMerchantAddProduct, KindMerchantRemoveProduct,
		KindFetchProductsByMerchantID, KindFetchProductsByNameAndMerchantID,
	} {
		rpc.Register(kind, rpc.Catalog)
	}
}

// MerchantAddProduct replies with the new product id.
type MerchantAddProduct struct {
	MerchantToken string  `json:"merchantToken"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Description   string  `json:"description"`
}

func (MerchantAddProduct) Kind() rpc.Kind { return KindMerchantAddProduct }

// MerchantRemoveProduct replies with Success.
type MerchantRemoveProduct struct {
	MerchantToken string `json:"merchantToken"`
	Name          string `json:"name"`
}

func (MerchantRemoveProduct) Kind() rpc.Kind { return KindMerchantRemoveProduct }

// FetchProductsByMerchantID replies with []ProductInfo, never null.
type FetchProductsByMerchantID struct {
	MerchantID string `json:"merchantID"`
}

func (FetchProductsByMerchantID) Kind() rpc.Kind { return KindFetchProductsByMerchantID }

// FetchProductsByNameAndMerchantID replies with []ProductInfo, or null when
// nothing matches.
type FetchProductsByNameAndMerchantID struct {
	MerchantID string `json:"merchantID"`
	Name       string `json:"name"`
}

func (FetchProductsByNameAndMerchantID) Kind() rpc.Kind { return KindFetchProductsByNameAndMerchantID }
