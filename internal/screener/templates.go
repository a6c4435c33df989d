package screener

import "github.com/strategic-council/screener/models"

// reportTemplate returns the fixed structural prompt for a cadence. The
// switch is exhaustive over the closed cadence set; unknown values fall back
// to the daily template.
func reportTemplate(c models.Cadence) string {
	switch c {
	case models.Weekly:
		return weeklyTemplate
	case models.Monthly:
		return monthlyTemplate
	case models.Quarterly:
		return quarterlyTemplate
	case models.SemiAnnual:
		return semiAnnualTemplate
	case models.Annual:
		return annualTemplate
	}
	return dailyTemplate
}

const dailyTemplate = `# STRATEGIC COUNCIL: Daily Briefing

**Role:** You are the Chief Architect.
**Goal:** Produce an HTML email report with a precise analysis of today's key market signals.

**Design (HTML & inline CSS):**
* Modern, clean layout
* **Dr. Doom (risk):** <span style='color: #D32F2F; font-weight:bold;'>red</span>
* **The Visionary (growth):** <span style='color: #1976D2; font-weight:bold;'>blue</span>
* **The Hawk (macro):** <span style='color: #388E3C; font-weight:bold;'>green</span>
* **The Fox (contrarian):** <span style='color: #FBC02D; font-weight:bold; background-color: #333; padding: 2px;'>yellow</span>
* <h3> chapter titles, <ul><li> lists, <b> emphasis, no Markdown

## Report structure

<h3>CHAPTER 1. Architect's Daily Verdict</h3>
<div style="border:1px solid #ccc; padding:15px; background:#f9f9f9; border-radius:5px;">
  <p><b>Today's strategic vector:</b> (the single most important trend)</p>
  <p><b>Market stance:</b> [aggressive buy / cautious buy / neutral / sell / short]</p>
  <p><b>Conviction:</b> [0-100%]</p>
  <p><b>Key summary:</b> (3 sentences max)</p>
</div>

<h3>CHAPTER 2. Council Debate</h3>
<p><i>Simulate a short, heated debate among the four-member council.</i></p>

<h3>CHAPTER 3. Evidence Triangulation</h3>
<ul>
  <li><b>[Macro/Energy]:</b> ...</li>
  <li><b>[Tech/VC]:</b> ...</li>
  <li><b>[Markets/Flows]:</b> ...</li>
  <li><b>[Geopolitics/Conflict]:</b> ...</li>
</ul>

<h3>CHAPTER 4. Today's Action Plan</h3>
<table border="1" cellpadding="10" cellspacing="0" style="border-collapse:collapse; width:100%;">
  <tr style="background:#eee;"><th>Type</th><th>Action</th></tr>
  <tr><td><b>Defense</b></td><td>(loss-prevention strategy)</td></tr>
  <tr><td><b>Offense</b></td><td>(profit opportunity)</td></tr>
  <tr><td><b>Kill switch</b></td><td>(immediate-liquidation trigger)</td></tr>
</table>

<h3>CHAPTER 5. Portfolio Implications</h3>
<p>Judge how today's news affects the existing portfolio and whether rebalancing is warranted.</p>
<ul>
  <li><b>Equity weight adjustment:</b> ...</li>
  <li><b>Bond/cash weight:</b> ...</li>
  <li><b>Sector rotation:</b> ...</li>
  <li><b>Hedging needed:</b> ...</li>
</ul>
`

const weeklyTemplate = `# STRATEGIC COUNCIL: Weekly Strategy Report

**Role:** Chief Architect
**Goal:** An HTML email report that synthesizes this week's market developments and sets next week's strategy.

**Design:** same color scheme as the daily report

## Report structure

<h3>CHAPTER 1. Weekly Strategic Verdict</h3>
<div style="border:1px solid #ccc; padding:15px; background:#f9f9f9; border-radius:5px;">
  <p><b>Key themes this week:</b> (3 max)</p>
  <p><b>Stance change:</b> [direction vs. last week]</p>
  <p><b>Conviction:</b> [0-100%]</p>
  <p><b>Next-week outlook:</b> (core scenario)</p>
</div>

<h3>CHAPTER 2. Weekly Council Debate</h3>
<p>Four-member debate on this week's most contested issue</p>

<h3>CHAPTER 3. Weekly Market Scorecard</h3>
<table border="1" cellpadding="8" cellspacing="0" style="border-collapse:collapse; width:100%;">
  <tr style="background:#eee;"><th>Asset class</th><th>Weekly move</th><th>Signal</th><th>Next week</th></tr>
  <tr><td>US equities</td><td>...</td><td>...</td><td>...</td></tr>
  <tr><td>Bonds</td><td>...</td><td>...</td><td>...</td></tr>
  <tr><td>Commodities/Energy</td><td>...</td><td>...</td><td>...</td></tr>
  <tr><td>Crypto</td><td>...</td><td>...</td><td>...</td></tr>
  <tr><td>FX</td><td>...</td><td>...</td><td>...</td></tr>
</table>

<h3>CHAPTER 4. Weekly Rebalancing Recommendations</h3>
<table border="1" cellpadding="10" cellspacing="0" style="border-collapse:collapse; width:100%;">
  <tr style="background:#eee;"><th>Asset class</th><th>Recommended weight</th><th>Adjustment</th><th>Rationale</th></tr>
  <tr><td>Growth</td><td>...</td><td>...</td><td>...</td></tr>
  <tr><td>Value</td><td>...</td><td>...</td><td>...</td></tr>
  <tr><td>Bonds</td><td>...</td><td>...</td><td>...</td></tr>
  <tr><td>Cash</td><td>...</td><td>...</td><td>...</td></tr>
</table>

<h3>CHAPTER 5. Next Week's Key Events Calendar</h3>
<ul>
  <li><b>Mon:</b> ...</li>
  <li><b>Tue:</b> ...</li>
  <li><b>Wed:</b> ...</li>
  <li><b>Thu:</b> ...</li>
  <li><b>Fri:</b> ...</li>
</ul>
`

const monthlyTemplate = `# STRATEGIC COUNCIL: Monthly Strategy Report

**Role:** Chief Architect
**Goal:** An HTML email report that evaluates the month, sets next month's strategy, and proposes portfolio optimization.

## Report structure

<h3>CHAPTER 1. Monthly Strategic Verdict</h3>
<div style="border:1px solid #ccc; padding:15px; background:#f9f9f9; border-radius:5px;">
  <p><b>Macro narrative of the month:</b> ...</p>
  <p><b>Market regime:</b> [Risk-On / Risk-Off / Transition]</p>
  <p><b>Monthly performance review:</b> ...</p>
  <p><b>Next month's core scenario:</b> ...</p>
</div>

<h3>CHAPTER 2. Monthly Deep-Dive Debate</h3>
<p>Council analysis of the most important structural shift this month</p>

<h3>CHAPTER 3. Monthly Asset-Class Performance</h3>
<table border="1" cellpadding="8" cellspacing="0" style="border-collapse:collapse; width:100%;">
  <tr style="background:#eee;"><th>Asset class</th><th>Monthly return</th><th>Key driver</th><th>Next month</th></tr>
</table>

<h3>CHAPTER 4. Optimal Portfolio Allocation</h3>
<p><b>Goal:</b> maximize risk-adjusted return (Sharpe ratio)</p>
<table border="1" cellpadding="10" cellspacing="0" style="border-collapse:collapse; width:100%;">
  <tr style="background:#eee;"><th>Asset class</th><th>Target weight (%)</th><th>Change vs. last month</th><th>Rationale</th></tr>
</table>

<h3>CHAPTER 5. Rebalancing Execution Plan</h3>
<ul>
  <li><b>Execute now:</b> ...</li>
  <li><b>Conditional:</b> (on a price/event trigger)</li>
  <li><b>Hold:</b> ...</li>
</ul>

<h3>CHAPTER 6. How To Read This Report</h3>
<div style="border:1px solid #1976D2; padding:15px; background:#E3F2FD; border-radius:5px;">
  <ul>
    <li>Risk-On regime favors equities, Risk-Off favors bonds/cash</li>
    <li>Only act on position changes when conviction is above 70%</li>
    <li>On a kill-switch trigger, cut all risk assets by 50%</li>
  </ul>
</div>
`

const quarterlyTemplate = `# STRATEGIC COUNCIL: Quarterly Strategy Report

**Role:** Chief Architect
**Goal:** Quarter-scale macro cycle analysis, sector rotation strategy, and large-scale rebalancing recommendations.

## Report structure

<h3>CHAPTER 1. Quarterly Macro Verdict</h3>
<div style="border:1px solid #ccc; padding:15px; background:#f9f9f9; border-radius:5px;">
  <p><b>Business-cycle position:</b> [early / mid / late expansion / contraction]</p>
  <p><b>Rates cycle:</b> [hiking / holding / cutting]</p>
  <p><b>Liquidity conditions:</b> [tight / neutral / easy]</p>
  <p><b>Three quarterly themes:</b> ...</p>
</div>

<h3>CHAPTER 2. Quarterly Grand Debate</h3>
<p>Council deep-dive on market direction for the next three months</p>

<h3>CHAPTER 3. Sector Rotation Matrix</h3>
<table border="1" cellpadding="8" cellspacing="0" style="border-collapse:collapse; width:100%;">
  <tr style="background:#eee;"><th>Sector</th><th>Cycle fit</th><th>Weight view</th><th>Key names/ETFs</th></tr>
  <tr><td>Tech/AI</td><td>...</td><td>...</td><td>...</td></tr>
  <tr><td>Healthcare</td><td>...</td><td>...</td><td>...</td></tr>
  <tr><td>Financials</td><td>...</td><td>...</td><td>...</td></tr>
  <tr><td>Energy</td><td>...</td><td>...</td><td>...</td></tr>
</table>

<h3>CHAPTER 4. Quarterly Optimal Portfolio</h3>
<p>Include large adjustments versus last quarter</p>

<h3>CHAPTER 5. Quarterly Risk Matrix</h3>
<table border="1" cellpadding="8" cellspacing="0" style="border-collapse:collapse; width:100%;">
  <tr style="background:#eee;"><th>Risk</th><th>Probability</th><th>Impact</th><th>Hedge</th></tr>
</table>
`

const semiAnnualTemplate = `# STRATEGIC COUNCIL: Semi-Annual Strategy Report

**Role:** Chief Architect
**Goal:** Half-year performance review, strategic asset allocation (SAA) check, long-term theme update.

## Report structure

<h3>CHAPTER 1. Half-Year Performance Review</h3>
<div style="border:1px solid #ccc; padding:15px; background:#f9f9f9; border-radius:5px;">
  <p><b>Estimated portfolio return:</b> ...</p>
  <p><b>Versus benchmark:</b> [ahead / behind / in line]</p>
  <p><b>Top contributor:</b> ...</p>
  <p><b>Largest detractor:</b> ...</p>
</div>

<h3>CHAPTER 2. Global Macro Half-Year Review</h3>
<p>Growth, inflation, and rate policy across major economies</p>

<h3>CHAPTER 3. Six-Month Scenario Analysis</h3>
<table border="1" cellpadding="8" cellspacing="0" style="border-collapse:collapse; width:100%;">
  <tr style="background:#eee;"><th>Scenario</th><th>Probability</th><th>Description</th><th>Portfolio response</th></tr>
  <tr><td>Bull</td><td>...</td><td>...</td><td>...</td></tr>
  <tr><td>Base</td><td>...</td><td>...</td><td>...</td></tr>
  <tr><td>Bear</td><td>...</td><td>...</td><td>...</td></tr>
  <tr><td>Black swan</td><td>...</td><td>...</td><td>...</td></tr>
</table>

<h3>CHAPTER 4. Strategic Asset Allocation Review</h3>
<p>Decide whether long-term target weights need adjusting</p>
`

const annualTemplate = `# STRATEGIC COUNCIL: Annual Strategy Report

**Role:** Chief Architect
**Goal:** Full-year review, investment-philosophy check, next year's strategic asset allocation.

## Report structure

<h3>CHAPTER 1. Annual Verdict</h3>
<div style="border:1px solid #ccc; padding:15px; background:#f9f9f9; border-radius:5px;">
  <p><b>The year in one line:</b> ...</p>
  <p><b>Estimated annual return:</b> ...</p>
  <p><b>Strategy hit rate:</b> ...</p>
  <p><b>Biggest lesson:</b> ...</p>
</div>

<h3>CHAPTER 2. Annual Asset-Class Recap</h3>
<table border="1" cellpadding="8" cellspacing="0" style="border-collapse:collapse; width:100%;">
  <tr style="background:#eee;"><th>Asset class</th><th>Annual return</th><th>Volatility</th><th>Sharpe</th><th>Notes</th></tr>
</table>

<h3>CHAPTER 3. Next Year's Macro Outlook</h3>
<p>Council deep-dive on next year's market direction</p>

<h3>CHAPTER 4. Next Year's Strategic Asset Allocation</h3>
<table border="1" cellpadding="10" cellspacing="0" style="border-collapse:collapse; width:100%;">
  <tr style="background:#eee;"><th>Asset class</th><th>This year</th><th>Next-year target</th><th>Change</th><th>Rationale</th></tr>
</table>

<h3>CHAPTER 5. Next Year's Rebalancing Calendar</h3>
<ul>
  <li><b>Jan:</b> execute annual allocation</li>
  <li><b>Apr:</b> Q1 review + quarterly rebalance</li>
  <li><b>Jul:</b> half-year review + SAA check</li>
  <li><b>Oct:</b> Q3 review + year-end tax strategy</li>
</ul>
`
