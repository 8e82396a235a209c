package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/corebank/ledgerengine/internal/domain"
)

type attributeKey struct {
	event, code string
}

type ruleKey struct {
	event, attribute, product, branch string
}

type mappingKey struct {
	reference, account string
}

// Snapshot is an immutable, versioned view of the accounting configuration.
// All cross references are plain identifiers resolved through index maps.
type Snapshot struct {
	version  int64
	loadedAt time.Time
	policy   domain.Policy

	accounts        []domain.ChartOfAccount
	accountByID     map[string]int
	accountByNumber map[string]int
	parents         map[string]bool

	events     map[string]domain.OperationEvent
	attributes map[attributeKey]domain.OperationEventAttribute

	rules     []domain.AccountingRule
	ruleIndex map[ruleKey]int

	referenceCodes map[string]domain.DocumentReferenceCode
	mappings       map[mappingKey]domain.CorrespondingMapping
	exceptions     map[mappingKey]domain.CorrespondingMappingException
	conditionals   map[string][]domain.ConditionalAccountReference

	shares   map[string]domain.ShareConfig
	openings map[string][]domain.AccountBalance
}

// SnapshotStats summarizes a snapshot.
type SnapshotStats struct {
	Version         int64     `json:"version"`
	LoadedAt        time.Time `json:"loaded_at"`
	Accounts        int       `json:"accounts"`
	Events          int       `json:"events"`
	Rules           int       `json:"rules"`
	Mappings        int       `json:"mappings"`
	Exceptions      int       `json:"exceptions"`
	ShareConfigs    int       `json:"share_configs"`
	OpeningBranches int       `json:"opening_branches"`
}

// NewSnapshot validates set and builds an immutable snapshot from it.
func NewSnapshot(set *domain.ConfigSet, policy domain.Policy, version int64, loadedAt time.Time) (*Snapshot, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	s := &Snapshot{
		version:         version,
		loadedAt:        loadedAt,
		policy:          policy,
		accountByID:     make(map[string]int, len(set.Accounts)),
		accountByNumber: make(map[string]int, len(set.Accounts)),
		parents:         make(map[string]bool),
		events:          make(map[string]domain.OperationEvent, len(set.Events)),
		attributes:      make(map[attributeKey]domain.OperationEventAttribute, len(set.Attributes)),
		ruleIndex:       make(map[ruleKey]int, len(set.Rules)),
		referenceCodes:  make(map[string]domain.DocumentReferenceCode, len(set.ReferenceCodes)),
		mappings:        make(map[mappingKey]domain.CorrespondingMapping, len(set.Mappings)),
		exceptions:      make(map[mappingKey]domain.CorrespondingMappingException, len(set.Exceptions)),
		conditionals:    make(map[string][]domain.ConditionalAccountReference),
		shares:          make(map[string]domain.ShareConfig, len(set.ShareConfigs)),
		openings:        make(map[string][]domain.AccountBalance),
	}

	steps := []func(*domain.ConfigSet) error{
		s.loadAccounts,
		s.loadCatalog,
		s.loadReferences,
		s.loadShares,
		s.loadRules,
		s.loadOpenings,
	}
	for _, step := range steps {
		if err := step(set); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Snapshot) loadAccounts(set *domain.ConfigSet) error {
	s.accounts = make([]domain.ChartOfAccount, 0, len(set.Accounts))
	for _, acc := range set.Accounts {
		if err := acc.Validate(); err != nil {
			return err
		}
		if _, dup := s.accountByID[acc.ID]; dup {
			return fmt.Errorf("%w: duplicate account id %s", domain.ErrInvalidConfig, acc.ID)
		}
		if _, dup := s.accountByNumber[acc.Number]; dup {
			return fmt.Errorf("%w: duplicate account number %s", domain.ErrInvalidConfig, acc.Number)
		}
		s.accountByID[acc.ID] = len(s.accounts)
		s.accountByNumber[acc.Number] = len(s.accounts)
		s.accounts = append(s.accounts, acc)
	}

	for _, acc := range s.accounts {
		if acc.ParentID == "" {
			continue
		}
		if _, ok := s.accountByID[acc.ParentID]; !ok {
			return fmt.Errorf("%w: account %s has unknown parent %s", domain.ErrInvalidConfig, acc.Number, acc.ParentID)
		}
		s.parents[acc.ParentID] = true

		seen := map[string]bool{acc.ID: true}
		for p := acc.ParentID; p != ""; p = s.accounts[s.accountByID[p]].ParentID {
			if seen[p] {
				return fmt.Errorf("%w: account hierarchy cycle at %s", domain.ErrInvalidConfig, acc.Number)
			}
			seen[p] = true
		}
	}
	return nil
}

func (s *Snapshot) loadCatalog(set *domain.ConfigSet) error {
	for _, ev := range set.Events {
		if ev.Code == "" {
			return fmt.Errorf("%w: event without code", domain.ErrInvalidConfig)
		}
		if _, dup := s.events[ev.Code]; dup {
			return fmt.Errorf("%w: duplicate event %s", domain.ErrInvalidConfig, ev.Code)
		}
		s.events[ev.Code] = ev
	}
	for _, attr := range set.Attributes {
		if _, ok := s.events[attr.EventCode]; !ok {
			return fmt.Errorf("%w: attribute %s of unknown event %s", domain.ErrInvalidConfig, attr.Code, attr.EventCode)
		}
		key := attributeKey{attr.EventCode, attr.Code}
		if _, dup := s.attributes[key]; dup {
			return fmt.Errorf("%w: duplicate attribute %s/%s", domain.ErrInvalidConfig, attr.EventCode, attr.Code)
		}
		s.attributes[key] = attr
	}
	return nil
}

func (s *Snapshot) loadReferences(set *domain.ConfigSet) error {
	for _, rc := range set.ReferenceCodes {
		if rc.Code == "" {
			return fmt.Errorf("%w: reference code without code", domain.ErrInvalidConfig)
		}
		if _, dup := s.referenceCodes[rc.Code]; dup {
			return fmt.Errorf("%w: duplicate reference code %s", domain.ErrInvalidConfig, rc.Code)
		}
		s.referenceCodes[rc.Code] = rc
	}

	for _, m := range set.Mappings {
		if _, ok := s.referenceCodes[m.ReferenceCode]; !ok {
			return fmt.Errorf("%w: mapping for unknown reference code %s", domain.ErrInvalidConfig, m.ReferenceCode)
		}
		if _, ok := s.accountByID[m.ChartOfAccountID]; !ok {
			return fmt.Errorf("%w: mapping %s for unknown account %s", domain.ErrInvalidConfig, m.ReferenceCode, m.ChartOfAccountID)
		}
		if err := s.checkCounterpart(m.CounterpartNumber, m.CounterpartCategory); err != nil {
			return fmt.Errorf("mapping %s/%s: %w", m.ReferenceCode, m.ChartOfAccountID, err)
		}
		key := mappingKey{m.ReferenceCode, m.ChartOfAccountID}
		if _, dup := s.mappings[key]; dup {
			return fmt.Errorf("%w: duplicate mapping %s/%s", domain.ErrInvalidConfig, m.ReferenceCode, m.ChartOfAccountID)
		}
		s.mappings[key] = m
	}

	for _, ex := range set.Exceptions {
		rc, ok := s.referenceCodes[ex.ReferenceCode]
		if !ok {
			return fmt.Errorf("%w: exception for unknown reference code %s", domain.ErrInvalidConfig, ex.ReferenceCode)
		}
		if !rc.HasException {
			return fmt.Errorf("%w: reference code %s does not allow exceptions", domain.ErrInvalidConfig, ex.ReferenceCode)
		}
		if err := s.checkCounterpart(ex.CounterpartNumber, ex.CounterpartCategory); err != nil {
			return fmt.Errorf("exception %s/%s: %w", ex.ReferenceCode, ex.AccountNumber, err)
		}
		key := mappingKey{ex.ReferenceCode, ex.AccountNumber}
		if _, dup := s.exceptions[key]; dup {
			return fmt.Errorf("%w: duplicate exception %s/%s", domain.ErrInvalidConfig, ex.ReferenceCode, ex.AccountNumber)
		}
		s.exceptions[key] = ex
	}

	for _, c := range set.Conditionals {
		if _, ok := s.referenceCodes[c.ReferenceCode]; !ok {
			return fmt.Errorf("%w: conditional for unknown reference code %s", domain.ErrInvalidConfig, c.ReferenceCode)
		}
		if c.AttributeName == "" {
			return fmt.Errorf("%w: conditional %s/%d has no attribute", domain.ErrInvalidConfig, c.ReferenceCode, c.Sequence)
		}
		if err := s.checkCounterpart(c.TargetNumber, ""); err != nil {
			return fmt.Errorf("conditional %s/%d: %w", c.ReferenceCode, c.Sequence, err)
		}
		s.conditionals[c.ReferenceCode] = append(s.conditionals[c.ReferenceCode], c)
	}
	for code, list := range s.conditionals {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Sequence < list[j].Sequence })
		for i := 1; i < len(list); i++ {
			if list[i].Sequence == list[i-1].Sequence {
				return fmt.Errorf("%w: conditionals of %s share sequence %d", domain.ErrInvalidConfig, code, list[i].Sequence)
			}
		}
	}

	return nil
}

func (s *Snapshot) checkCounterpart(number string, category domain.Category) error {
	idx, ok := s.accountByNumber[number]
	if !ok {
		return fmt.Errorf("%w: counterpart account %s", domain.ErrAccountNotFound, number)
	}
	acc := s.accounts[idx]
	if s.parents[acc.ID] {
		return fmt.Errorf("%w: counterpart %s", domain.ErrAccountNotLeaf, number)
	}
	if category != "" && category != acc.Category {
		return fmt.Errorf("%w: counterpart %s is %s, mapping says %s", domain.ErrInvalidConfig, number, acc.Category, category)
	}
	return nil
}

func (s *Snapshot) loadShares(set *domain.ConfigSet) error {
	for _, sc := range set.ShareConfigs {
		if err := sc.Validate(); err != nil {
			return err
		}
		if _, dup := s.shares[sc.Code]; dup {
			return fmt.Errorf("%w: duplicate share config %s", domain.ErrShareConfigInvalid, sc.Code)
		}
		s.shares[sc.Code] = sc
	}
	return nil
}

func (s *Snapshot) loadRules(set *domain.ConfigSet) error {
	s.rules = make([]domain.AccountingRule, 0, len(set.Rules))
	for _, rule := range set.Rules {
		if err := s.validateRule(&rule); err != nil {
			return err
		}

		entries := append([]domain.AccountingRuleEntry(nil), rule.Entries...)
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Sequence < entries[j].Sequence })
		rule.Entries = entries

		key := ruleKey{rule.EventCode, rule.AttributeCode, rule.ProductID, rule.BranchID}
		if prev, dup := s.ruleIndex[key]; dup {
			return fmt.Errorf("%w: rules %s and %s share scope %s/%s (product %q, branch %q)",
				domain.ErrRuleConflict, s.rules[prev].ID, rule.ID, rule.EventCode, rule.AttributeCode, rule.ProductID, rule.BranchID)
		}
		s.ruleIndex[key] = len(s.rules)
		s.rules = append(s.rules, rule)
	}
	return nil
}

func (s *Snapshot) validateRule(rule *domain.AccountingRule) error {
	event, ok := s.events[rule.EventCode]
	if !ok {
		return fmt.Errorf("%w: rule %s references event %s", domain.ErrUnknownEvent, rule.ID, rule.EventCode)
	}
	if _, ok := s.attributes[attributeKey{rule.EventCode, rule.AttributeCode}]; !ok {
		return fmt.Errorf("%w: rule %s references attribute %s/%s", domain.ErrUnknownAttribute, rule.ID, rule.EventCode, rule.AttributeCode)
	}
	if _, err := rule.ScopeRank(); err != nil {
		return err
	}
	if len(rule.Entries) == 0 {
		return fmt.Errorf("%w: rule %s has no entries", domain.ErrInvalidRuleSet, rule.ID)
	}
	if !event.MultiEntry && len(rule.Entries) != 2 {
		return fmt.Errorf("%w: rule %s of single-entry event %s has %d lines",
			domain.ErrInvalidRuleSet, rule.ID, rule.EventCode, len(rule.Entries))
	}

	for _, e := range rule.Entries {
		if err := e.Direction.Validate(); err != nil {
			return fmt.Errorf("rule %s line %d: %w", rule.ID, e.Sequence, err)
		}
		if err := e.Branch.Validate(); err != nil {
			return fmt.Errorf("rule %s line %d: %w", rule.ID, e.Sequence, err)
		}
		if err := e.Formula.Validate(); err != nil {
			return fmt.Errorf("rule %s line %d: %w", rule.ID, e.Sequence, err)
		}
		if e.Formula.Kind == domain.FormulaFlat {
			if err := domain.CheckScale(e.Formula.Value, s.policy.MinorUnits); err != nil {
				return fmt.Errorf("%w: rule %s line %d: %v", domain.ErrInvalidRuleSet, rule.ID, e.Sequence, err)
			}
		}
		if err := s.validateAccountRef(e.Account); err != nil {
			return fmt.Errorf("rule %s line %d: %w", rule.ID, e.Sequence, err)
		}
		if e.Formula.Kind == domain.FormulaShare {
			sc, ok := s.shares[e.Formula.ShareCode]
			if !ok {
				return fmt.Errorf("%w: rule %s references share config %s", domain.ErrShareConfigInvalid, rule.ID, e.Formula.ShareCode)
			}
			if _, ok := sc.Channels[e.Formula.Channel]; !ok {
				return fmt.Errorf("%w: share config %s has no %s channel", domain.ErrShareConfigInvalid, sc.Code, e.Formula.Channel)
			}
		}
	}

	return s.checkNetting(rule)
}

func (s *Snapshot) validateAccountRef(ref domain.AccountRef) error {
	switch ref.Kind {
	case domain.AccountRefDirect:
		if _, err := s.leafAccount(ref.ChartOfAccountID); err != nil {
			return err
		}
	case domain.AccountRefCorresponding:
		if _, ok := s.referenceCodes[ref.ReferenceCode]; !ok {
			return fmt.Errorf("%w: unknown reference code %s", domain.ErrMappingNotFound, ref.ReferenceCode)
		}
		if ref.SourceAccountID != "" {
			if _, ok := s.accountByID[ref.SourceAccountID]; !ok {
				return fmt.Errorf("%w: source account %s", domain.ErrAccountNotFound, ref.SourceAccountID)
			}
		}
	default:
		return fmt.Errorf("%w: unknown account reference kind %q", domain.ErrInvalidRuleSet, ref.Kind)
	}
	return nil
}

type shareSymbol struct {
	code    string
	channel domain.Channel
	base    string
}

// checkNetting proves symbolically that every branch group of the rule nets
// to zero for all attribute values, both with the channels written on the
// rule and with every channel an operation may switch all share lines to.
// A channel missing from one of the referenced share configs is skipped:
// such an operation fails to evaluate instead of posting.
func (s *Snapshot) checkNetting(rule *domain.AccountingRule) error {
	if err := s.checkNettingFor(rule, ""); err != nil {
		return err
	}
	for _, ch := range domain.Channels {
		if !s.channelDefined(rule, ch) {
			continue
		}
		if err := s.checkNettingFor(rule, ch); err != nil {
			return fmt.Errorf("%w (channel %s)", err, ch)
		}
	}
	return nil
}

func (s *Snapshot) channelDefined(rule *domain.AccountingRule, ch domain.Channel) bool {
	for _, e := range rule.Entries {
		if e.Formula.Kind != domain.FormulaShare {
			continue
		}
		if _, ok := s.shares[e.Formula.ShareCode].Channels[ch]; !ok {
			return false
		}
	}
	return true
}

// checkNettingFor runs the netting proof with every share line evaluated in
// channel override, or in its own channel when override is empty. A group
// holding every non-zero party of a share channel with the same coefficient
// collapses to its base, since the split always sums to the base exactly.
func (s *Snapshot) checkNettingFor(rule *domain.AccountingRule, override domain.Channel) error {
	type group struct {
		flat   decimal.Decimal
		coeff  map[string]int64
		shares map[shareSymbol]map[domain.Party]int64
	}
	groups := make(map[domain.BranchSelector]*group)

	for _, e := range rule.Entries {
		sel := e.Branch.Normalize()
		g, ok := groups[sel]
		if !ok {
			g = &group{coeff: map[string]int64{}, shares: map[shareSymbol]map[domain.Party]int64{}}
			groups[sel] = g
		}
		sign := e.Direction.Sign()
		f := e.Formula
		switch f.Kind {
		case domain.FormulaFlat:
			g.flat = g.flat.Add(f.Value.Mul(decimal.NewFromInt(sign)))
		case domain.FormulaAttributeValue:
			g.coeff["attr:"+f.Attribute] += sign
		case domain.FormulaPercentOf:
			g.coeff["pct:"+f.Attribute+":"+f.Percent.String()] += sign
		case domain.FormulaShare:
			ch := f.Channel
			if override != "" {
				ch = override
			}
			set := s.shares[f.ShareCode].Channels[ch]
			if set.Percent(f.Party).IsZero() {
				continue
			}
			sym := shareSymbol{f.ShareCode, ch, f.Attribute}
			if g.shares[sym] == nil {
				g.shares[sym] = map[domain.Party]int64{}
			}
			g.shares[sym][f.Party] += sign
		}
	}

	for sel, g := range groups {
		for sym, hits := range g.shares {
			set := s.shares[sym.code].Channels[sym.channel]
			var k int64
			uniform := true
			first := true
			for _, p := range domain.Parties {
				if set.Percent(p).IsZero() {
					continue
				}
				if first {
					k, first = hits[p], false
				} else if hits[p] != k {
					uniform = false
				}
			}
			if uniform {
				g.coeff["attr:"+sym.base] += k
				continue
			}
			for p, c := range hits {
				g.coeff[fmt.Sprintf("share:%s:%s:%s:%s", sym.code, sym.channel, sym.base, p)] += c
			}
		}

		if !g.flat.IsZero() {
			return fmt.Errorf("%w: rule %s %s branch flat amounts net to %s", domain.ErrInvalidRuleSet, rule.ID, sel, g.flat)
		}
		for sym, c := range g.coeff {
			if c != 0 {
				return fmt.Errorf("%w: rule %s %s branch does not net %s (coefficient %d)", domain.ErrInvalidRuleSet, rule.ID, sel, sym, c)
			}
		}
	}
	return nil
}

func (s *Snapshot) loadOpenings(set *domain.ConfigSet) error {
	seen := make(map[mappingKey]bool)
	net := make(map[string]decimal.Decimal)
	for _, ob := range set.OpeningBalances {
		acc, err := s.leafAccount(ob.ChartOfAccountID)
		if err != nil {
			return fmt.Errorf("opening balance on branch %s: %w", ob.BranchID, err)
		}
		key := mappingKey{ob.BranchID, ob.ChartOfAccountID}
		if seen[key] {
			return fmt.Errorf("%w: duplicate opening balance %s/%s", domain.ErrInvalidConfig, ob.BranchID, acc.Number)
		}
		seen[key] = true
		s.openings[ob.BranchID] = append(s.openings[ob.BranchID], domain.AccountBalance{
			AccountID:     acc.ID,
			AccountNumber: acc.Number,
			NormalSide:    acc.NormalSide,
			Balance:       ob.Balance,
		})
		net[ob.BranchID] = net[ob.BranchID].Add(domain.DebitPositive(acc.NormalSide, ob.Balance))
	}
	for branch, v := range net {
		if !v.IsZero() {
			return fmt.Errorf("%w: opening balances of branch %s are off by %s", domain.ErrInvalidConfig, branch, v)
		}
	}
	return nil
}

func (s *Snapshot) leafAccount(id string) (*domain.ChartOfAccount, error) {
	idx, ok := s.accountByID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
	}
	if s.parents[id] {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotLeaf, s.accounts[idx].Number)
	}
	acc := s.accounts[idx]
	return &acc, nil
}

// Version returns the snapshot version.
func (s *Snapshot) Version() int64 { return s.version }

// Policy returns the posting policy the snapshot was built with.
func (s *Snapshot) Policy() domain.Policy { return s.policy }

// Account returns a copy of the account with id.
func (s *Snapshot) Account(id string) (*domain.ChartOfAccount, bool) {
	idx, ok := s.accountByID[id]
	if !ok {
		return nil, false
	}
	acc := s.accounts[idx]
	return &acc, true
}

// AccountByNumber returns a copy of the account with number.
func (s *Snapshot) AccountByNumber(number string) (*domain.ChartOfAccount, bool) {
	idx, ok := s.accountByNumber[number]
	if !ok {
		return nil, false
	}
	acc := s.accounts[idx]
	return &acc, true
}

// LeafAccount returns the account with id if it may be posted to.
func (s *Snapshot) LeafAccount(id string) (*domain.ChartOfAccount, error) {
	return s.leafAccount(id)
}

// IsLeaf reports whether the account has no children.
func (s *Snapshot) IsLeaf(id string) bool { return !s.parents[id] }

// Event returns the event with code.
func (s *Snapshot) Event(code string) (domain.OperationEvent, bool) {
	ev, ok := s.events[code]
	return ev, ok
}

// HasAttribute reports whether the event declares the attribute.
func (s *Snapshot) HasAttribute(eventCode, attributeCode string) bool {
	_, ok := s.attributes[attributeKey{eventCode, attributeCode}]
	return ok
}

// Rule returns the rule bound to exactly this scope.
func (s *Snapshot) Rule(eventCode, attributeCode, productID, branchID string) (*domain.AccountingRule, bool) {
	idx, ok := s.ruleIndex[ruleKey{eventCode, attributeCode, productID, branchID}]
	if !ok {
		return nil, false
	}
	return &s.rules[idx], true
}

// ReferenceCode returns the document reference code.
func (s *Snapshot) ReferenceCode(code string) (domain.DocumentReferenceCode, bool) {
	rc, ok := s.referenceCodes[code]
	return rc, ok
}

// Mapping returns the normal corresponding mapping.
func (s *Snapshot) Mapping(referenceCode, chartOfAccountID string) (domain.CorrespondingMapping, bool) {
	m, ok := s.mappings[mappingKey{referenceCode, chartOfAccountID}]
	return m, ok
}

// Exception returns the mapping exception for a source account number.
func (s *Snapshot) Exception(referenceCode, accountNumber string) (domain.CorrespondingMappingException, bool) {
	ex, ok := s.exceptions[mappingKey{referenceCode, accountNumber}]
	return ex, ok
}

// Conditionals returns the conditionals of a reference code in evaluation order.
func (s *Snapshot) Conditionals(referenceCode string) []domain.ConditionalAccountReference {
	return s.conditionals[referenceCode]
}

// ShareConfig returns the share configuration with code.
func (s *Snapshot) ShareConfig(code string) (domain.ShareConfig, bool) {
	sc, ok := s.shares[code]
	return sc, ok
}

// OpeningBalances returns the configured opening balances of a branch.
func (s *Snapshot) OpeningBalances(branchID string) []domain.AccountBalance {
	return append([]domain.AccountBalance(nil), s.openings[branchID]...)
}

// Stats summarizes the snapshot.
func (s *Snapshot) Stats() SnapshotStats {
	return SnapshotStats{
		Version:         s.version,
		LoadedAt:        s.loadedAt,
		Accounts:        len(s.accounts),
		Events:          len(s.events),
		Rules:           len(s.rules),
		Mappings:        len(s.mappings),
		Exceptions:      len(s.exceptions),
		ShareConfigs:    len(s.shares),
		OpeningBranches: len(s.openings),
	}
}
