package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/walletscan/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.ExposureReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeBreakdown(md, report)
	w.writeRisks(md, report)
	w.writeClustering(md, report)
	w.writeRecentActivity(md, report)
	w.writeFooter(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with scan information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.ExposureReport) {
	md.H1("Walletscan Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Address", "`" + report.Address + "`"},
			{"Network", report.Network},
			{"Scan Date", report.DateScanned.Format("2006-01-02 15:04:05 MST")},
			{"Exposure Score", fmt.Sprintf("**%d/100**", report.ExposureScore)},
			{"Risk Level", report.RiskLevel},
		},
	})
	md.PlainText("")

	w.writeAlert(md, report)
}

// writeAlert writes an alert matching the risk level.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.ExposureReport) {
	switch report.RiskLevel {
	case model.RiskCritical.String():
		md.Cautionf("Critical exposure (%d/100). This wallet is likely deanonymizable from public data.", report.ExposureScore)
	case model.RiskHigh.String():
		md.Warningf("High exposure (%d/100). This wallet is readily trackable.", report.ExposureScore)
	case model.RiskMedium.String():
		md.Importantf("Medium exposure (%d/100). This wallet has a recognizable on-chain footprint.", report.ExposureScore)
	default:
		md.Note("Low exposure. Limited public linkability was found for this wallet.")
	}
	md.PlainText("")
}

// writeBreakdown writes the score breakdown table and chart.
func (w *MarkdownWriter) writeBreakdown(md *markdown.Markdown, report *model.ExposureReport) {
	md.H2("Score Breakdown")
	md.PlainText("")

	b := report.ScoreBreakdown
	md.Table(markdown.TableSet{
		Header: []string{"Signal", "Score"},
		Rows: [][]string{
			{"KYC Links", strconv.Itoa(b.KYCLinks)},
			{"Clustering", strconv.Itoa(b.Clustering)},
			{"Activity", strconv.Itoa(b.Activity)},
			{"Financial", strconv.Itoa(b.Financial)},
			{"Identity", strconv.Itoa(b.Identity)},
		},
	})
	md.PlainText("")

	w.writePieChart(md, report)

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Net Worth (est.)", fmt.Sprintf("$%.2f", report.NetWorthUSD)},
			{"Realized Losses", fmt.Sprintf("$%.2f", report.RealizedLossesUSD)},
			{"Trades", strconv.Itoa(report.TradeCount)},
			{"Memecoin Trades (est.)", strconv.Itoa(report.MemecoinTrades)},
		},
	})
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart of the breakdown weights.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.ExposureReport) {
	b := report.ScoreBreakdown
	if b.KYCLinks+b.Clustering+b.Activity+b.Financial+b.Identity == 0 {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Exposure Signal Distribution"),
		piechart.WithShowData(true),
	)
	if b.KYCLinks > 0 {
		chart.LabelAndIntValue("KYC Links", uint64(b.KYCLinks))
	}
	if b.Clustering > 0 {
		chart.LabelAndIntValue("Clustering", uint64(b.Clustering))
	}
	if b.Activity > 0 {
		chart.LabelAndIntValue("Activity", uint64(b.Activity))
	}
	if b.Financial > 0 {
		chart.LabelAndIntValue("Financial", uint64(b.Financial))
	}
	if b.Identity > 0 {
		chart.LabelAndIntValue("Identity", uint64(b.Identity))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeRisks writes the risk statement list.
func (w *MarkdownWriter) writeRisks(md *markdown.Markdown, report *model.ExposureReport) {
	md.H2("Risks")
	md.PlainText("")
	md.BulletList(report.Risks...)
	md.PlainText("")
}

// writeClustering writes the counterparty section.
func (w *MarkdownWriter) writeClustering(md *markdown.Markdown, report *model.ExposureReport) {
	md.H2("Counterparties")
	md.PlainText("")

	if report.Clustering.InteractedCount == 0 {
		md.PlainText("No counterparties observed.")
		md.PlainText("")
		return
	}

	md.PlainTextf("Distinct counterparties: %d", report.Clustering.InteractedCount)
	md.PlainText("")

	if len(report.Clustering.Nodes) > 0 {
		rows := make([][]string, 0, len(report.Clustering.Nodes))
		for _, node := range report.Clustering.Nodes {
			label := node.Label
			if label == "" {
				label = "-"
			}
			rows = append(rows, []string{
				"`" + model.ShortAddress(node.Address) + "`",
				node.Type,
				label,
				strconv.Itoa(node.Count),
			})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Address", "Type", "Label", "Interactions"},
			Rows:   rows,
		})
		md.PlainText("")
	}
}

// writeRecentActivity writes the recent transaction summaries.
func (w *MarkdownWriter) writeRecentActivity(md *markdown.Markdown, report *model.ExposureReport) {
	if len(report.RecentTxSummary) == 0 {
		return
	}

	md.H2("Recent Activity")
	md.PlainText("")

	rows := make([][]string, 0, len(report.RecentTxSummary))
	for _, tx := range report.RecentTxSummary {
		rows = append(rows, []string{
			tx.Date,
			tx.Type,
			fmt.Sprintf("$%.2f", tx.AmountUSD),
			tx.Description,
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Date", "Type", "Amount", "Description"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes explorer links and the generator line.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown, report *model.ExposureReport) {
	md.H2("External Links")
	md.PlainText("")
	md.BulletList(
		"Solscan: "+report.Links.Solscan,
		"Arkham: "+report.Links.Arkham,
		"X Search: "+report.Links.XSearch,
	)
	md.PlainText("")
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [walletscan](https://github.com/nao1215/walletscan)*")
}
