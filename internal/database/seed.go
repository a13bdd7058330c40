package database

import (
	"time"

	"trading-journal/internal/models"
)

// SampleTrades returns the three illustrative trades written on every
// bootstrap, stamped with now in UTC.
func SampleTrades(now time.Time) []models.Trade {
	ts := models.NewTimestamp(now)
	return []models.Trade{
		{
			Timestamp:      ts,
			Decision:       models.DecisionHold,
			Percentage:     65.5,
			Reason:         "Market remains stable",
			BTCBalance:     0.001,
			KRWBalance:     50000,
			BTCAvgBuyPrice: 45000000,
			BTCKRWPrice:    45000000,
			TradeAmount:    0,
			TradeType:      models.TradeTypeAnalysis,
		},
		{
			Timestamp:      ts,
			Decision:       models.DecisionBuy,
			Percentage:     75.2,
			Reason:         "RSI entered oversold territory",
			BTCBalance:     0.002,
			KRWBalance:     40000,
			BTCAvgBuyPrice: 44000000,
			BTCKRWPrice:    44000000,
			TradeAmount:    10000,
			TradeType:      models.TradeTypeAnalysis,
		},
		{
			Timestamp:      ts,
			Decision:       models.DecisionSell,
			Percentage:     80.1,
			Reason:         "Taking profit",
			BTCBalance:     0.001,
			KRWBalance:     60000,
			BTCAvgBuyPrice: 46000000,
			BTCKRWPrice:    46000000,
			TradeAmount:    -10000,
			TradeType:      models.TradeTypeAnalysis,
		},
	}
}

// SampleReflections returns one reflection per sample trade, in the same
// order. TradingID is filled in by Seed.
func SampleReflections() []models.Reflection {
	return []models.Reflection{
		{
			ReflectionText: "The market was stable today. HOLD looks like the right call.",
			MoodScore:      7,
			LearningPoints: "Value of patience",
			NextActions:    "Keep monitoring",
		},
		{
			ReflectionText: "Caught the RSI signal well. Entry timing was appropriate.",
			MoodScore:      8,
			LearningPoints: "Using technical indicators",
			NextActions:    "Set a stop-loss",
		},
		{
			ReflectionText: "Hit the target return and took profit.",
			MoodScore:      9,
			LearningPoints: "Importance of setting targets",
			NextActions:    "Wait for the next opportunity",
		},
	}
}
