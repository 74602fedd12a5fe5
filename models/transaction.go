package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/levarentz132/storing/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Action string

const (
	ActionIn  Action = "IN"
	ActionOut Action = "OUT"
)

// ParseAction menerima "in"/"out" (case-insensitive).
func ParseAction(s string) (Action, bool) {
	switch Action(strings.ToUpper(strings.TrimSpace(s))) {
	case ActionIn:
		return ActionIn, true
	case ActionOut:
		return ActionOut, true
	}
	return "", false
}

// MovementItem adalah satu baris barang di dalam log transaksi. Key JSON lain yang
// dikirim client (lokasi, keterangan, ...) disimpan di Extra dan ikut tercatat.
type MovementItem struct {
	ItemCode   string                 `json:"item_code"`
	Quantity   int                    `json:"quantity"`
	NamaBarang string                 `json:"nama_barang"`
	Type       string                 `json:"type"`
	Satuan     string                 `json:"satuan,omitempty"`
	Stok       *int                   `json:"stok,omitempty"`
	Extra      map[string]interface{} `json:"-"`
}

var movementItemKeys = []string{"item_code", "quantity", "nama_barang", "type", "satuan", "stok"}

func (m MovementItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(m.Extra)+len(movementItemKeys))
	for k, v := range m.Extra {
		out[k] = v
	}
	out["item_code"] = m.ItemCode
	out["quantity"] = m.Quantity
	out["nama_barang"] = m.NamaBarang
	out["type"] = m.Type
	if m.Satuan != "" {
		out["satuan"] = m.Satuan
	}
	if m.Stok != nil {
		out["stok"] = *m.Stok
	}
	return json.Marshal(out)
}

func (m *MovementItem) UnmarshalJSON(b []byte) error {
	type plain MovementItem
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	extra, err := ExtraFields(b, movementItemKeys...)
	if err != nil {
		return err
	}
	p.Extra = extra
	*m = MovementItem(p)
	return nil
}

// ExtraFields mengembalikan key object JSON selain known; nil kalau tidak ada.
func ExtraFields(b []byte, known ...string) (map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(raw, k)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

type Transaction struct {
	ID        uint                              `gorm:"primaryKey" json:"id"`
	Code      string                            `gorm:"-" json:"code"`
	Action    Action                            `gorm:"type:varchar(8);not null;index" json:"action"`
	Items     datatypes.JSONSlice[MovementItem] `gorm:"not null" json:"items"`
	Requester string                            `json:"requester"`
	Timestamp time.Time                         `gorm:"not null;index" json:"timestamp"`
}

func (Transaction) TableName() string { return "stock_transactions" }

func (t *Transaction) AfterFind(tx *gorm.DB) error {
	t.Code = utils.GenTransCode(int64(t.ID), t.Timestamp)
	return nil
}

func (t *Transaction) AfterCreate(tx *gorm.DB) error {
	t.Code = utils.GenTransCode(int64(t.ID), t.Timestamp)
	return nil
}
