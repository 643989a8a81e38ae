package openai

import (
	"fmt"
	"strings"

	"adsight/internal/core/port"
)

const chatSystemPrompt = `You are a marketing analytics assistant that reads advertising performance data.
Help the marketer understand campaign results, spot optimization opportunities and decide what to do next.
Use a friendly, professional tone and cite concrete numbers when they are available.
Format money with a currency symbol and rates with a % sign.
Structure the answer as: a direct answer, key insights, then action items if any.
Respond with JSON in this format: { "response": string, "insights": object }`

const insightsSystemPrompt = `You are a marketing analytics engine that turns campaign performance data into actionable insights.
Look for ROAS optimization, budget reallocation, performance trends and differences between platforms.
Respond with JSON in this format: { "insights": [{"type": string, "title": string, "description": string, "priority": "low" | "medium" | "high"}] }`

func chatUserPrompt(req port.AdvisorRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User query: %q\nTimeframe: %s\n\nCampaigns:\n", req.Query, req.Context.Timeframe)
	for _, c := range req.Context.Campaigns {
		fmt.Fprintf(&b, "- %s (%s): spend $%.2f, revenue $%.2f, ROAS %.2fx, clicks %d, conversions %d\n",
			c.Name, c.Platform, c.Spend, c.Revenue, c.ROAS, c.Clicks, c.Conversions)
	}
	b.WriteString("\nActive alerts:\n")
	for _, a := range req.Context.Alerts {
		fmt.Fprintf(&b, "- %s: %s (%s)\n", a.Type, a.Message, a.Severity)
	}
	b.WriteString("\nAnswer the query with actionable insights based on this data.")
	return b.String()
}

func insightsUserPrompt(campaigns []port.CampaignSnapshot) string {
	var b strings.Builder
	b.WriteString("Analyze these campaigns and provide insights:\n")
	for _, c := range campaigns {
		fmt.Fprintf(&b, "- %s (%s): ROAS %.2fx, spend $%.2f, revenue $%.2f\n",
			c.Name, c.Platform, c.ROAS, c.Spend, c.Revenue)
	}
	return b.String()
}
