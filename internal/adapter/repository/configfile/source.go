// Package configfile loads the accounting master data from a YAML document.
package configfile

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/corebank/ledgerengine/internal/domain"
)

type document struct {
	Accounts        []accountDoc        `yaml:"accounts"`
	Events          []eventDoc          `yaml:"events"`
	Rules           []ruleDoc           `yaml:"rules"`
	ReferenceCodes  []referenceCodeDoc  `yaml:"reference_codes"`
	Mappings        []mappingDoc        `yaml:"mappings"`
	Exceptions      []exceptionDoc      `yaml:"exceptions"`
	Conditionals    []conditionalDoc    `yaml:"conditionals"`
	ShareConfigs    []shareConfigDoc    `yaml:"share_configs"`
	OpeningBalances []openingBalanceDoc `yaml:"opening_balances"`
}

type accountDoc struct {
	ID         string `yaml:"id"`
	Number     string `yaml:"number"`
	Name       string `yaml:"name"`
	Category   string `yaml:"category"`
	NormalSide string `yaml:"normal_side,omitempty"`
	Parent     string `yaml:"parent,omitempty"`
}

type eventDoc struct {
	Code        string         `yaml:"code"`
	Description string         `yaml:"description,omitempty"`
	MultiEntry  bool           `yaml:"multi_entry,omitempty"`
	Attributes  []attributeDoc `yaml:"attributes"`
}

type attributeDoc struct {
	Code        string `yaml:"code"`
	Description string `yaml:"description,omitempty"`
}

type ruleDoc struct {
	ID        string     `yaml:"id"`
	Event     string     `yaml:"event"`
	Attribute string     `yaml:"attribute"`
	Product   string     `yaml:"product,omitempty"`
	Branch    string     `yaml:"branch,omitempty"`
	Entries   []entryDoc `yaml:"entries"`
}

type entryDoc struct {
	Sequence      int        `yaml:"seq"`
	Account       string     `yaml:"account,omitempty"`
	Corresponding string     `yaml:"corresponding,omitempty"`
	SourceAccount string     `yaml:"source_account,omitempty"`
	Direction     string     `yaml:"direction"`
	Branch        string     `yaml:"branch,omitempty"`
	Formula       formulaDoc `yaml:"formula"`
	Description   string     `yaml:"description,omitempty"`
}

type formulaDoc struct {
	Kind      string `yaml:"kind"`
	Value     string `yaml:"value,omitempty"`
	Attribute string `yaml:"attribute,omitempty"`
	Percent   string `yaml:"percent,omitempty"`
	Share     string `yaml:"share,omitempty"`
	Channel   string `yaml:"channel,omitempty"`
	Party     string `yaml:"party,omitempty"`
}

type referenceCodeDoc struct {
	Code         string `yaml:"code"`
	HasException bool   `yaml:"has_exception,omitempty"`
	Description  string `yaml:"description,omitempty"`
}

type mappingDoc struct {
	ReferenceCode       string `yaml:"reference_code"`
	Account             string `yaml:"account"`
	Counterpart         string `yaml:"counterpart"`
	CounterpartCategory string `yaml:"counterpart_category,omitempty"`
}

type exceptionDoc struct {
	ReferenceCode       string `yaml:"reference_code"`
	AccountNumber       string `yaml:"account_number"`
	Counterpart         string `yaml:"counterpart"`
	CounterpartCategory string `yaml:"counterpart_category,omitempty"`
}

type conditionalDoc struct {
	ReferenceCode string `yaml:"reference_code"`
	Sequence      int    `yaml:"seq"`
	Tag           string `yaml:"tag"`
	Value         string `yaml:"value"`
	Target        string `yaml:"target"`
}

type shareConfigDoc struct {
	Code     string                 `yaml:"code"`
	Channels map[string]shareSetDoc `yaml:"channels"`
}

type shareSetDoc struct {
	HeadOffice        string `yaml:"head_office"`
	Partner           string `yaml:"partner"`
	SourceBranch      string `yaml:"source_branch"`
	DestinationBranch string `yaml:"destination_branch"`
}

type openingBalanceDoc struct {
	Branch  string `yaml:"branch"`
	Account string `yaml:"account"`
	Balance string `yaml:"balance"`
}

// Source implements usecase.ConfigSource over a YAML file that is re-read
// on every Load.
type Source struct {
	path string
}

// NewSource creates a source reading path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Load reads and parses the file.
func (s *Source) Load(ctx context.Context) (*domain.ConfigSet, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return set, nil
}

// Parse decodes a YAML document into a configuration set. Unknown keys are
// rejected. Semantic checks are left to the snapshot builder.
func Parse(data []byte) (*domain.ConfigSet, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: parsing config: %v", domain.ErrInvalidConfig, err)
	}
	return doc.toConfigSet()
}

func (d *document) toConfigSet() (*domain.ConfigSet, error) {
	set := &domain.ConfigSet{}

	for _, a := range d.Accounts {
		set.Accounts = append(set.Accounts, domain.ChartOfAccount{
			ID:         a.ID,
			Number:     a.Number,
			Name:       a.Name,
			Category:   domain.Category(a.Category),
			NormalSide: domain.Side(a.NormalSide),
			ParentID:   a.Parent,
		})
	}

	for _, e := range d.Events {
		set.Events = append(set.Events, domain.OperationEvent{Code: e.Code, Description: e.Description, MultiEntry: e.MultiEntry})
		for _, a := range e.Attributes {
			set.Attributes = append(set.Attributes, domain.OperationEventAttribute{EventCode: e.Code, Code: a.Code, Description: a.Description})
		}
	}

	for _, r := range d.Rules {
		rule := domain.AccountingRule{
			ID:            r.ID,
			EventCode:     r.Event,
			AttributeCode: r.Attribute,
			ProductID:     r.Product,
			BranchID:      r.Branch,
		}
		for _, e := range r.Entries {
			entry, err := e.toEntry()
			if err != nil {
				return nil, fmt.Errorf("rule %s entry %d: %w", r.ID, e.Sequence, err)
			}
			rule.Entries = append(rule.Entries, entry)
		}
		set.Rules = append(set.Rules, rule)
	}

	for _, c := range d.ReferenceCodes {
		set.ReferenceCodes = append(set.ReferenceCodes, domain.DocumentReferenceCode{Code: c.Code, HasException: c.HasException, Description: c.Description})
	}
	for _, m := range d.Mappings {
		set.Mappings = append(set.Mappings, domain.CorrespondingMapping{
			ReferenceCode:       m.ReferenceCode,
			ChartOfAccountID:    m.Account,
			CounterpartNumber:   m.Counterpart,
			CounterpartCategory: domain.Category(m.CounterpartCategory),
		})
	}
	for _, e := range d.Exceptions {
		set.Exceptions = append(set.Exceptions, domain.CorrespondingMappingException{
			ReferenceCode:       e.ReferenceCode,
			AccountNumber:       e.AccountNumber,
			CounterpartNumber:   e.Counterpart,
			CounterpartCategory: domain.Category(e.CounterpartCategory),
		})
	}
	for _, c := range d.Conditionals {
		set.Conditionals = append(set.Conditionals, domain.ConditionalAccountReference{
			ReferenceCode:  c.ReferenceCode,
			Sequence:       c.Sequence,
			AttributeName:  c.Tag,
			AttributeValue: c.Value,
			TargetNumber:   c.Target,
		})
	}

	for _, sc := range d.ShareConfigs {
		cfg := domain.ShareConfig{Code: sc.Code, Channels: make(map[domain.Channel]domain.ShareSet, len(sc.Channels))}
		for ch, s := range sc.Channels {
			shares, err := s.toShareSet()
			if err != nil {
				return nil, fmt.Errorf("share config %s channel %s: %w", sc.Code, ch, err)
			}
			cfg.Channels[domain.Channel(ch)] = shares
		}
		set.ShareConfigs = append(set.ShareConfigs, cfg)
	}

	for _, o := range d.OpeningBalances {
		balance, err := parseDecimal("balance", o.Balance)
		if err != nil {
			return nil, fmt.Errorf("opening balance %s/%s: %w", o.Branch, o.Account, err)
		}
		set.OpeningBalances = append(set.OpeningBalances, domain.OpeningBalance{
			BranchID:         o.Branch,
			ChartOfAccountID: o.Account,
			Balance:          balance,
		})
	}

	return set, nil
}

func (e entryDoc) toEntry() (domain.AccountingRuleEntry, error) {
	var ref domain.AccountRef
	switch {
	case e.Account != "" && e.Corresponding != "":
		return domain.AccountingRuleEntry{}, fmt.Errorf("%w: both account and corresponding set", domain.ErrInvalidConfig)
	case e.Corresponding != "":
		ref = domain.CorrespondingAccount(e.Corresponding, e.SourceAccount)
	default:
		ref = domain.DirectAccount(e.Account)
	}

	formula := domain.AmountFormula{
		Kind:      domain.FormulaKind(e.Formula.Kind),
		Attribute: e.Formula.Attribute,
		ShareCode: e.Formula.Share,
		Channel:   domain.Channel(e.Formula.Channel),
		Party:     domain.Party(e.Formula.Party),
	}
	var err error
	if formula.Value, err = parseDecimal("value", e.Formula.Value); err != nil {
		return domain.AccountingRuleEntry{}, err
	}
	if formula.Percent, err = parseDecimal("percent", e.Formula.Percent); err != nil {
		return domain.AccountingRuleEntry{}, err
	}

	return domain.AccountingRuleEntry{
		Sequence:    e.Sequence,
		Account:     ref,
		Direction:   domain.Direction(e.Direction),
		Branch:      domain.BranchSelector(e.Branch),
		Formula:     formula,
		Description: e.Description,
	}, nil
}

func (s shareSetDoc) toShareSet() (domain.ShareSet, error) {
	var (
		out domain.ShareSet
		err error
	)
	if out.HeadOffice, err = parseDecimal("head_office", s.HeadOffice); err != nil {
		return out, err
	}
	if out.Partner, err = parseDecimal("partner", s.Partner); err != nil {
		return out, err
	}
	if out.SourceBranch, err = parseDecimal("source_branch", s.SourceBranch); err != nil {
		return out, err
	}
	if out.DestinationBranch, err = parseDecimal("destination_branch", s.DestinationBranch); err != nil {
		return out, err
	}
	return out, nil
}

// parseDecimal treats an empty string as zero.
func parseDecimal(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q is not a decimal", domain.ErrInvalidConfig, field, s)
	}
	return d, nil
}
