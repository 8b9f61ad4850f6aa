package scheduler

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"QuantSentinel/internal/analyzer"
	"QuantSentinel/internal/config"
	"QuantSentinel/internal/logger"
	"QuantSentinel/internal/model"
	"QuantSentinel/internal/notifier"
	"QuantSentinel/internal/risk"
	"QuantSentinel/internal/store"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the daily scan and Telegram commands. Store may be nil
// when no database is available; Recorder then points at store.Noop and the
// journal commands are disabled.
type Scheduler struct {
	Cron     *cron.Cron
	Analyzer *analyzer.Analyzer
	Store    *store.Store
	Recorder store.AnalysisRecorder
	Notifier *notifier.TelegramNotifier
	Gate     *notifier.AlertGate
	Cfg      *config.Config
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, an *analyzer.Analyzer, st *store.Store, rec store.AnalysisRecorder, tn *notifier.TelegramNotifier, gate *notifier.AlertGate, cfg *config.Config) *Scheduler {
	if rec == nil {
		rec = store.Noop{}
	}
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Analyzer: an,
		Store:    st,
		Recorder: rec,
		Notifier: tn,
		Gate:     gate,
		Cfg:      cfg,
		Ctx:      ctx,
	}
}

// RegisterAll registers the daily scan task.
func (s *Scheduler) RegisterAll(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyScan); err != nil {
		return fmt.Errorf("register daily scan: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	logger.Get().Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	logger.Get().Info("scheduler stopped")
}

// RunScanNow executes the daily scan immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.dailyScan()
}

// dailyScan analyzes every watchlist symbol, records the results, and
// pushes alerts for fresh BUY/SELL signals.
func (s *Scheduler) dailyScan() {
	log := logger.Get()
	log.Info("running daily scan")

	symbols := s.watchlist()
	if len(symbols) == 0 {
		log.Warn("watchlist is empty, nothing to scan")
		return
	}

	batch := s.Analyzer.BatchAnalyze(s.Ctx, symbols)

	var results []*model.ConsensusResult
	failures := make(map[string]error)
	for _, sym := range symbols {
		entry := batch[sym]
		if entry.Err != nil {
			failures[sym] = entry.Err
			continue
		}
		results = append(results, entry.Result)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Ticker < results[j].Ticker })

	for _, res := range results {
		s.enrich(res)
		if err := s.Recorder.RecordAnalysis(res); err != nil {
			log.Errorw("record analysis", "ticker", res.Ticker, "error", err)
		}
	}

	s.trySend(notifier.FormatBatchSummary(results, failures))

	if s.Notifier != nil {
		for _, res := range results {
			if !s.Gate.ShouldAlert(res.Ticker, res.FinalSignal) {
				continue
			}
			if err := s.Notifier.SendWithRetry(s.Ctx, notifier.FormatAnalysisReport(res), 3); err != nil {
				log.Errorw("send alert", "ticker", res.Ticker, "error", err)
				continue
			}
			// Only a delivered alert counts for dedup.
			s.Gate.MarkSent(res.Ticker, res.FinalSignal)
		}
	}

	log.Infow("daily scan finished", "analyzed", len(results), "failed", len(failures))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return helpText
	}

	switch fields[0] {
	case "/scan":
		go s.dailyScan()
		return "Scan started, results will follow."
	case "/analyze":
		if len(fields) != 2 {
			return "Usage: /analyze SYMBOL"
		}
		return s.analyzeOne(strings.ToUpper(fields[1]))
	case "/watchlist":
		return notifier.FormatWatchlist(s.watchlist())
	case "/watch":
		if len(fields) < 2 {
			return "Usage: /watch SYM1 SYM2 ..."
		}
		if s.Store == nil {
			return noDatabaseReply
		}
		if err := s.Store.ReplaceWatchlist(fields[1:]); err != nil {
			return fmt.Sprintf("Failed to update watchlist: %v", err)
		}
		return notifier.FormatWatchlist(s.watchlist())
	case "/journal":
		if s.Store == nil {
			return noDatabaseReply
		}
		trades, err := s.Store.ListTrades()
		if err != nil {
			return fmt.Sprintf("Failed to read journal: %v", err)
		}
		return notifier.FormatJournal(trades)
	case "/open":
		return s.openTrade(fields[1:])
	case "/close":
		return s.closeTrade(fields[1:])
	case "/size":
		return s.positionSize(fields[1:])
	default:
		return helpText
	}
}

const noDatabaseReply = "This command needs the database, which is not available."

const helpText = "Available commands:\n" +
	"• /scan — analyze the whole watchlist now\n" +
	"• /analyze SYMBOL — analyze one ticker\n" +
	"• /watchlist — show tracked symbols\n" +
	"• /watch SYM1 SYM2 ... — replace the watchlist\n" +
	"• /journal — show paper trades\n" +
	"• /open SYMBOL LONG|SHORT ENTRY STOP — record a paper trade\n" +
	"• /close ID EXIT — close a paper trade\n" +
	"• /size ACCOUNT RISK% ENTRY STOP — position sizing"

func (s *Scheduler) analyzeOne(symbol string) string {
	res, err := s.Analyzer.Analyze(s.Ctx, symbol)
	if err != nil {
		return fmt.Sprintf("Analysis of %s failed: %v", symbol, err)
	}
	s.enrich(res)
	if err := s.Recorder.RecordAnalysis(res); err != nil {
		logger.Get().Errorw("record analysis", "ticker", symbol, "error", err)
	}
	return notifier.FormatAnalysisReport(res)
}

// enrich attaches a trade setup sized from the configured risk limits.
func (s *Scheduler) enrich(res *model.ConsensusResult) {
	if res.SuggestedStop == nil {
		return
	}
	res.Setup = risk.BuildTradeSetup(res.FinalSignal, res.LatestClose, *res.SuggestedStop,
		s.Cfg.Risk.AccountSize, s.Cfg.Risk.RiskPercent, s.Cfg.Risk.RRRatio)
}

func (s *Scheduler) openTrade(args []string) string {
	if len(args) != 4 {
		return "Usage: /open SYMBOL LONG|SHORT ENTRY STOP"
	}
	if s.Store == nil {
		return noDatabaseReply
	}
	entry, err1 := strconv.ParseFloat(args[2], 64)
	stop, err2 := strconv.ParseFloat(args[3], 64)
	if err1 != nil || err2 != nil {
		return "Entry and stop must be numbers."
	}
	tradeType := model.TradeType(strings.ToUpper(args[1]))
	rec, err := s.Store.OpenTrade(strings.ToUpper(args[0]), tradeType, entry, stop)
	if err != nil {
		return fmt.Sprintf("Failed to open trade: %v", err)
	}
	return fmt.Sprintf("Opened trade #%d: %s %s @ %.2f (stop %.2f)",
		rec.ID, rec.Type, rec.Symbol, rec.Entry, rec.StopLoss)
}

func (s *Scheduler) closeTrade(args []string) string {
	if len(args) != 2 {
		return "Usage: /close ID EXIT"
	}
	if s.Store == nil {
		return noDatabaseReply
	}
	id, err1 := strconv.ParseInt(args[0], 10, 64)
	exit, err2 := strconv.ParseFloat(args[1], 64)
	if err1 != nil || err2 != nil {
		return "ID must be an integer and exit a number."
	}
	rec, err := s.Store.CloseTrade(id, exit)
	if err != nil {
		return fmt.Sprintf("Failed to close trade: %v", err)
	}
	reply := fmt.Sprintf("Closed trade #%d at %.2f", rec.ID, exit)
	if pnl, ok := risk.PnL(*rec); ok {
		reply += fmt.Sprintf(", P&L %+.2f", pnl)
	}
	return reply
}

func (s *Scheduler) positionSize(args []string) string {
	account := s.Cfg.Risk.AccountSize
	riskPct := s.Cfg.Risk.RiskPercent
	var entry, stop float64

	switch len(args) {
	case 2:
		// /size ENTRY STOP uses configured account and risk
		var err1, err2 error
		entry, err1 = strconv.ParseFloat(args[0], 64)
		stop, err2 = strconv.ParseFloat(args[1], 64)
		if err1 != nil || err2 != nil {
			return "All arguments must be numbers."
		}
	case 4:
		vals := make([]float64, 4)
		for i, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return "All arguments must be numbers."
			}
			vals[i] = v
		}
		account, riskPct, entry, stop = vals[0], vals[1], vals[2], vals[3]
	default:
		return "Usage: /size [ACCOUNT RISK%] ENTRY STOP"
	}

	plan, err := risk.CalculatePositionSize(account, riskPct, entry, stop)
	if err != nil {
		return fmt.Sprintf("Sizing failed: %v", err)
	}
	return notifier.FormatPositionPlan(plan)
}

// watchlist prefers the database list, falling back to config.
func (s *Scheduler) watchlist() []string {
	if s.Store == nil {
		return s.Cfg.Watchlist
	}
	symbols, err := s.Store.Watchlist()
	if err != nil {
		logger.Get().Errorw("read watchlist", "error", err)
	}
	if len(symbols) == 0 {
		return s.Cfg.Watchlist
	}
	return symbols
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		logger.Get().Errorw("send notification", "error", err)
	}
}
