package models

import (
	"time"

	"gorm.io/gorm"
)

// Decision is the action recorded for a trade: HOLD, BUY or SELL.
// It is stored as free text.
type Decision string

const (
	DecisionHold Decision = "HOLD"
	DecisionBuy  Decision = "BUY"
	DecisionSell Decision = "SELL"
)

// Valid reports whether d is one of the known decisions.
func (d Decision) Valid() bool {
	switch d {
	case DecisionHold, DecisionBuy, DecisionSell:
		return true
	}
	return false
}

// TradeTypeAnalysis is the trade_type column default.
const TradeTypeAnalysis = "analysis"

// Trade is one journaled trading decision together with the account and
// market context at the time it was made.
// Zero balances and an empty TradeType are written as the column defaults;
// a zero Timestamp is set to the insert time.
type Trade struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Timestamp      Timestamp `json:"timestamp"`
	Decision       Decision  `json:"decision"`
	Percentage     float64   `json:"percentage"` // confidence of the decision, 0-100
	Reason         string    `json:"reason"`
	BTCBalance     float64   `gorm:"column:btc_balance;default:0" json:"btc_balance"`
	KRWBalance     float64   `gorm:"column:krw_balance;default:0" json:"krw_balance"`
	BTCAvgBuyPrice float64   `gorm:"column:btc_avg_buy_price;default:0" json:"btc_avg_buy_price"`
	BTCKRWPrice    float64   `gorm:"column:btc_krw_price;default:0" json:"btc_krw_price"`
	TradeAmount    float64   `gorm:"default:0" json:"trade_amount"`
	TradeType      string    `gorm:"default:analysis" json:"trade_type"`
}

// TableName overrides the table name used by gorm.
func (Trade) TableName() string {
	return "trading_history"
}

// BeforeCreate stamps a trade that has no timestamp yet.
func (t *Trade) BeforeCreate(tx *gorm.DB) error {
	if t.Timestamp.IsZero() {
		t.Timestamp = NewTimestamp(time.Now())
	}
	return nil
}
