package gemini

import (
	"fmt"
	"strings"
)

// Prompt builders for every model call. Free-text sections instruct the
// model on markdown structure; structured calls carry a numbered list of
// the blocks the schema expects.

func StockOverviewPrompt(ticker, countryName string) string {
	return fmt.Sprintf("Generate a concise company overview for %s (%s). Describe its business, market position, and recent strategic developments. Format as a single, detailed paragraph.", ticker, countryName)
}

func StockNewsPrompt(ticker string) string {
	return fmt.Sprintf("Analyze the top 3-5 most impactful recent news stories for the stock %s. For each story, provide a brief summary and its potential impact on the stock price. Use markdown for formatting, with bold headings for each news story.", ticker)
}

func StockOutlookPrompt(ticker string) string {
	return fmt.Sprintf("Provide a balanced investment outlook for %s for the next 6-12 months. Discuss potential opportunities, risks, and key factors to watch. Structure your response with three distinct sections using markdown headings: '### Bull Case', '### Bear Case', and '### Neutral Outlook'.", ticker)
}

func StockStructuredPrompt(ticker, countryName, currencyCode string) string {
	return fmt.Sprintf(`Generate a detailed financial and technical report for the stock %s (%s). All monetary values must be in %s. Provide:
1.  An AI-based summary including trend direction, momentum strength, volatility, and overall risk level.
2.  The overall market sentiment.
3.  Key fundamental metrics.
4.  Key technical indicators.
5.  Key metrics from the latest balance sheet and profit & loss statement.
6.  A list of the top 10 stakeholders.`, ticker, countryName, currencyCode)
}

func CryptoOverviewPrompt(ticker string) string {
	return fmt.Sprintf("Generate a concise overview for the cryptocurrency %s. Describe its purpose, technology, and market position. Format as a single, detailed paragraph.", ticker)
}

func CryptoNewsPrompt(ticker string) string {
	return fmt.Sprintf("Analyze the top 3-5 most impactful recent news stories for %s. For each story, provide a brief summary and its potential impact on the price. Use markdown for formatting, with bold headings for each news story.", ticker)
}

func CryptoOutlookPrompt(ticker string) string {
	return StockOutlookPrompt(ticker)
}

func CryptoStructuredPrompt(ticker, currencyCode string) string {
	return fmt.Sprintf(`Generate a detailed report for the cryptocurrency %s. All monetary values must be in %s. Provide:
1.  An AI-based summary including trend direction, momentum strength, volatility, and overall risk level.
2.  The overall market sentiment.
3.  Key tokenomics data.
4.  Key on-chain metrics.`, ticker, currencyCode)
}

func MarketOverviewPrompt(assetName, countryName string) string {
	return fmt.Sprintf("Generate a concise market overview for %s in %s. Cover the current situation, key drivers, and recent performance. Format as a single, detailed paragraph.", assetName, countryName)
}

func MarketNewsPrompt(assetName, countryName string) string {
	return fmt.Sprintf("Analyze the top 3-5 most impactful domestic and international financial news stories for %s in %s from the last week. For each story, provide a brief summary and its potential market impact. Use markdown for formatting, with bold headings for each news story.", assetName, countryName)
}

func MarketOutlookPrompt(assetName, countryName string) string {
	return fmt.Sprintf("Provide a balanced investment outlook for %s in %s for the next 6-12 months. Discuss potential opportunities, risks, and key factors to watch. Structure your response with three distinct sections using markdown headings: '### Bull Case', '### Bear Case', and '### Neutral Outlook'.", assetName, countryName)
}

func KeyMetricsPrompt(assetName, countryName string) string {
	return fmt.Sprintf("Generate key metrics for the %s market in %s.", assetName, countryName)
}

func HistoricalDataPrompt(ticker string) string {
	return fmt.Sprintf(`Provide daily historical price data for the last 365 days for the asset %s. Include date (in "YYYY-MM-DD" format), open, high, low, and close price. Make sure the data is sorted by date in ascending order.`, ticker)
}

func RealTimeQuotePrompt(tickers []string) string {
	return fmt.Sprintf("Provide the current real-time price for the following asset tickers: %s. Include the ticker, latest price, the absolute price change, and the percentage change from the previous close.", strings.Join(tickers, ", "))
}

func StockScreenerPrompt(countryName string) string {
	return fmt.Sprintf(`Generate a stock screener for the stock market in %s. Provide 5 stocks for each of the following categories for today's market:
- Top Gainers
- Top Losers
- High Volume movers
- Overbought (RSI > 70)
- Oversold (RSI < 30)

For each stock, include its ticker, full name, percentage change, and a very brief reason for its status.`, countryName)
}

func CryptoScreenerPrompt() string {
	return `Generate a cryptocurrency screener for today's market. Provide 5 coins for each of the following categories:
- Top Gainers
- Top Losers
- Trending (high social and trade volume)
- Newly Listed (on major exchanges)

For each coin, include its ticker (e.g., BTC), full name, percentage change, and a very brief reason for its status.`
}

// ChatSystemInstruction binds a chat session to one asset for its lifetime.
func ChatSystemInstruction(assetName, assetType string) string {
	return fmt.Sprintf("You are a world-class financial analyst AI named MarketLens Pro. Your user is asking questions about the %s '%s'. Provide expert, concise, and helpful answers. Use markdown for formatting when appropriate.", assetType, assetName)
}
