package gemini

import "google.golang.org/genai"

// Schema descriptors for every structured call. Each descriptor is sent to
// the model as the response schema and reused afterwards to validate the
// parsed reply, so the two sides can never drift apart.

func aiSummarySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"trend": {
				Type:        genai.TypeString,
				Enum:        []string{"Bullish", "Bearish", "Sideways"},
				Description: "The current price trend direction.",
			},
			"momentum": {
				Type:        genai.TypeString,
				Enum:        []string{"Strong", "Weak", "Neutral"},
				Description: "The strength of the current price momentum.",
			},
			"volatility": {
				Type:        genai.TypeString,
				Enum:        []string{"Low", "Medium", "High"},
				Description: "The asset's current price volatility.",
			},
			"riskLevel": {
				Type:        genai.TypeString,
				Enum:        []string{"Low", "Medium", "High"},
				Description: "The overall risk level associated with the asset.",
			},
		},
		Required: []string{"trend", "momentum", "volatility", "riskLevel"},
	}
}

// StockAnalysisSchema describes the structured block of a stock report.
// The free-text sections (overview, news, outlook) come from separate
// unconstrained calls and are not part of this descriptor.
func StockAnalysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"aiSummary": aiSummarySchema(),
			"marketSentiment": {
				Type:        genai.TypeString,
				Enum:        []string{"Bullish", "Bearish", "Neutral"},
				Description: "The overall market sentiment for the stock.",
			},
			"fundamentals": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"peRatio":       {Type: genai.TypeNumber},
					"pbRatio":       {Type: genai.TypeNumber},
					"sectorPe":      {Type: genai.TypeNumber},
					"eps":           {Type: genai.TypeNumber},
					"dividendYield": {Type: genai.TypeNumber},
					"beta":          {Type: genai.TypeNumber},
					"roi":           {Type: genai.TypeNumber, Description: "Return on Investment as a percentage"},
					"cagr5y":        {Type: genai.TypeNumber, Description: "5-year Compound Annual Growth Rate as a percentage"},
				},
				Required: []string{"peRatio", "pbRatio", "sectorPe", "eps", "dividendYield", "beta", "roi", "cagr5y"},
			},
			"technicals": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"52WeekHigh":          {Type: genai.TypeNumber},
					"52WeekLow":           {Type: genai.TypeNumber},
					"movingAverage50Day":  {Type: genai.TypeNumber},
					"movingAverage200Day": {Type: genai.TypeNumber},
					"rsi":                 {Type: genai.TypeNumber},
					"supportLevel":        {Type: genai.TypeNumber},
					"resistanceLevel":     {Type: genai.TypeNumber},
				},
				Required: []string{"52WeekHigh", "52WeekLow", "movingAverage50Day", "movingAverage200Day", "rsi", "supportLevel", "resistanceLevel"},
			},
			"balanceSheet": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"totalAssets":       {Type: genai.TypeString, Description: "Total assets as a string in the requested currency"},
					"totalLiabilities":  {Type: genai.TypeString, Description: "Total liabilities as a string in the requested currency"},
					"totalEquity":       {Type: genai.TypeString, Description: "Total equity as a string in the requested currency"},
					"debtToEquityRatio": {Type: genai.TypeNumber},
					"currentRatio":      {Type: genai.TypeNumber},
				},
				Required: []string{"totalAssets", "totalLiabilities", "totalEquity", "debtToEquityRatio", "currentRatio"},
			},
			"pnl": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"totalRevenue":    {Type: genai.TypeString, Description: "Total revenue as a string in the requested currency"},
					"grossProfit":     {Type: genai.TypeString, Description: "Gross profit as a string in the requested currency"},
					"netIncome":       {Type: genai.TypeString, Description: "Net income as a string in the requested currency"},
					"ebitda":          {Type: genai.TypeString, Description: "EBITDA as a string in the requested currency"},
					"netProfitMargin": {Type: genai.TypeNumber, Description: "Net profit margin as a percentage"},
				},
				Required: []string{"totalRevenue", "grossProfit", "netIncome", "ebitda", "netProfitMargin"},
			},
			"stakeholders": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":       {Type: genai.TypeString, Description: "Name of the stakeholder"},
						"shares":     {Type: genai.TypeString, Description: "Number of shares held as a string (e.g., '1.7B')"},
						"percentage": {Type: genai.TypeNumber, Description: "Shareholding percentage"},
					},
					Required: []string{"name", "shares", "percentage"},
				},
			},
		},
		Required: []string{"aiSummary", "marketSentiment", "fundamentals", "technicals", "balanceSheet", "pnl", "stakeholders"},
	}
}

// CryptoAnalysisSchema describes the structured block of a crypto report.
func CryptoAnalysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"aiSummary": aiSummarySchema(),
			"marketSentiment": {
				Type:        genai.TypeString,
				Enum:        []string{"Bullish", "Bearish", "Neutral"},
				Description: "The overall market sentiment for the cryptocurrency.",
			},
			"tokenomics": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"marketCap":         {Type: genai.TypeString, Description: "Market capitalization in the requested currency."},
					"circulatingSupply": {Type: genai.TypeString, Description: "Current circulating supply."},
					"totalSupply":       {Type: genai.TypeString, Description: "Total supply."},
					"maxSupply":         {Type: genai.TypeString, Description: "Maximum possible supply."},
					"tradingVolume24h":  {Type: genai.TypeString, Description: "24-hour trading volume in the requested currency."},
				},
				Required: []string{"marketCap", "circulatingSupply", "totalSupply", "maxSupply", "tradingVolume24h"},
			},
			"onChainMetrics": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"activeAddresses":     {Type: genai.TypeString, Description: "Number of unique active addresses in the last 24 hours."},
					"transactionCount24h": {Type: genai.TypeString, Description: "Number of transactions in the last 24 hours."},
					"totalValueLocked":    {Type: genai.TypeString, Description: "Total Value Locked (TVL) in the requested currency, if applicable."},
					"hashRate":            {Type: genai.TypeString, Description: "The network's hash rate, if applicable."},
				},
				Required: []string{"activeAddresses", "transactionCount24h", "totalValueLocked", "hashRate"},
			},
		},
		Required: []string{"aiSummary", "marketSentiment", "tokenomics", "onChainMetrics"},
	}
}

// KeyMetricsSchema describes the structured block of a market overview.
func KeyMetricsSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"marketSentiment": {
				Type: genai.TypeString,
				Enum: []string{"Bullish", "Bearish", "Neutral"},
			},
			"volatilityIndex": {
				Type:        genai.TypeNumber,
				Description: "A value between 0 and 100",
			},
			"riskLevel": {
				Type: genai.TypeString,
				Enum: []string{"Low", "Medium", "High"},
			},
			"growthPotential": {
				Type: genai.TypeString,
				Enum: []string{"Low", "Medium", "High"},
			},
			"cagr5y": {
				Type:        genai.TypeNumber,
				Description: "The 5-year Compound Annual Growth Rate as a percentage",
			},
		},
		Required: []string{"marketSentiment", "volatilityIndex", "riskLevel", "growthPotential", "cagr5y"},
	}
}

// HistoricalDataSchema describes a daily OHLC series.
func HistoricalDataSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"date":  {Type: genai.TypeString, Description: "Date in YYYY-MM-DD format"},
				"open":  {Type: genai.TypeNumber},
				"high":  {Type: genai.TypeNumber},
				"low":   {Type: genai.TypeNumber},
				"close": {Type: genai.TypeNumber},
			},
			Required: []string{"date", "open", "high", "low", "close"},
		},
	}
}

// RealTimeQuoteSchema describes a batch of quote snapshots.
func RealTimeQuoteSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"ticker":        {Type: genai.TypeString},
				"price":         {Type: genai.TypeNumber},
				"change":        {Type: genai.TypeNumber},
				"changePercent": {Type: genai.TypeNumber, Description: "Percentage change"},
			},
			Required: []string{"ticker", "price", "change", "changePercent"},
		},
	}
}

func screenerEntrySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"ticker": {Type: genai.TypeString},
			"name":   {Type: genai.TypeString},
			"change": {Type: genai.TypeString, Description: "The price change, formatted as a percentage string (e.g., '+2.5%')."},
			"reason": {Type: genai.TypeString, Description: "A brief reason for the asset's movement."},
		},
		Required: []string{"ticker", "name", "change", "reason"},
	}
}

// StockScreenerSchema describes the five-category stock screener report.
func StockScreenerSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"topGainers":    {Type: genai.TypeArray, Items: screenerEntrySchema()},
			"topLosers":     {Type: genai.TypeArray, Items: screenerEntrySchema()},
			"highVolume":    {Type: genai.TypeArray, Items: screenerEntrySchema()},
			"overboughtRSI": {Type: genai.TypeArray, Items: screenerEntrySchema(), Description: "Stocks with RSI > 70"},
			"oversoldRSI":   {Type: genai.TypeArray, Items: screenerEntrySchema(), Description: "Stocks with RSI < 30"},
		},
		Required: []string{"topGainers", "topLosers", "highVolume", "overboughtRSI", "oversoldRSI"},
	}
}

// CryptoScreenerSchema describes the four-category crypto screener report.
func CryptoScreenerSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"topGainers":  {Type: genai.TypeArray, Items: screenerEntrySchema()},
			"topLosers":   {Type: genai.TypeArray, Items: screenerEntrySchema()},
			"trending":    {Type: genai.TypeArray, Items: screenerEntrySchema(), Description: "Coins with high social media or trading volume buzz."},
			"newlyListed": {Type: genai.TypeArray, Items: screenerEntrySchema(), Description: "Recently listed coins on major exchanges."},
		},
		Required: []string{"topGainers", "topLosers", "trending", "newlyListed"},
	}
}
