package gemini

import (
	"strings"
	"testing"
)

func TestStockStructuredPrompt_CarriesCurrency(t *testing.T) {
	prompt := StockStructuredPrompt("RELIANCE.NS", "India", "INR")

	for _, want := range []string{"RELIANCE.NS", "India", "INR", "top 10 stakeholders"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestRealTimeQuotePrompt_JoinsTickers(t *testing.T) {
	prompt := RealTimeQuotePrompt([]string{"BTC", "ETH", "SOL"})

	if !strings.Contains(prompt, "BTC, ETH, SOL") {
		t.Errorf("prompt missing joined ticker list: %s", prompt)
	}
}

func TestOutlookPrompts_RequestMarkdownSections(t *testing.T) {
	for _, prompt := range []string{
		StockOutlookPrompt("TCS.NS"),
		CryptoOutlookPrompt("ETH"),
		MarketOutlookPrompt("Stocks", "India"),
	} {
		for _, heading := range []string{"### Bull Case", "### Bear Case", "### Neutral Outlook"} {
			if !strings.Contains(prompt, heading) {
				t.Errorf("prompt missing heading %q: %s", heading, prompt)
			}
		}
	}
}

func TestChatSystemInstruction_BindsAsset(t *testing.T) {
	inst := ChatSystemInstruction("Bitcoin", "cryptocurrency")

	if !strings.Contains(inst, "MarketLens Pro") {
		t.Error("instruction missing product persona")
	}
	if !strings.Contains(inst, "the cryptocurrency 'Bitcoin'") {
		t.Errorf("instruction missing asset binding: %s", inst)
	}
}
