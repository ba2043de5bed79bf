package state

import (
	"reflect"
	"sync"
	"testing"
	"time"

	"social-dashboard/internal/models"
)

var now = time.Date(2023, 9, 15, 14, 30, 0, 0, time.UTC)

func seedAccounts() []models.Account {
	return []models.Account{
		{ID: "1", Username: "@usuario1", ProfileName: "Usuario Ejemplo 1", ProxyURL: "proxy1.example.com:8080", Status: models.AccountActive, LastActive: now},
		{ID: "2", Username: "@usuario2", ProfileName: "Usuario Ejemplo 2", ProxyURL: "proxy2.example.com:8080", Status: models.AccountInactive, LastActive: now},
	}
}

func TestSubmitAccount(t *testing.T) {
	tests := []struct {
		name     string
		draft    AccountDraft
		username string
		proxy    string
	}{
		{name: "adds prefix", draft: AccountDraft{Username: "user1"}, username: "@user1", proxy: NoProxy},
		{name: "keeps prefix", draft: AccountDraft{Username: "@user1", ProxyURL: "p.example.com:3128"}, username: "@user1", proxy: "p.example.com:3128"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := seedAccounts()
			after, account, ok := SubmitAccount(before, tt.draft, NewSequence(10), now)
			if !ok {
				t.Fatal("expected valid draft")
			}
			if len(after) != len(before)+1 {
				t.Fatalf("expected %d accounts, got %d", len(before)+1, len(after))
			}
			if account.Status != models.AccountPending {
				t.Fatalf("expected pending status, got %q", account.Status)
			}
			if account.Username != tt.username {
				t.Fatalf("expected username %q, got %q", tt.username, account.Username)
			}
			if account.ProxyURL != tt.proxy {
				t.Fatalf("expected proxy %q, got %q", tt.proxy, account.ProxyURL)
			}
			if account.ProfileName != "Usuario 3" {
				t.Fatalf("expected profile name Usuario 3, got %q", account.ProfileName)
			}
			if account.ID != "10" || after[2] != account {
				t.Fatalf("expected appended account with id 10, got %+v", after[2])
			}
			if !reflect.DeepEqual(before, seedAccounts()) {
				t.Fatal("input collection was mutated")
			}
		})
	}
}

func TestSubmitInvalidDraftsAreNoOps(t *testing.T) {
	ids := NewSequence(1)

	accounts := seedAccounts()
	if got, _, ok := SubmitAccount(accounts, AccountDraft{Username: "  "}, ids, now); ok || len(got) != 2 {
		t.Fatalf("expected no-op for blank username, got ok=%v len=%d", ok, len(got))
	}
	if got, _, ok := SubmitTemplate(nil, TemplateDraft{Name: "x"}, ids); ok || len(got) != 0 {
		t.Fatal("expected no-op for template without content")
	}
	if got, _, ok := SubmitCampaign(nil, CampaignDraft{Name: "x", AccountID: "1"}, ids, now); ok || len(got) != 0 {
		t.Fatal("expected no-op for campaign without template")
	}
	if got, _, ok := SubmitBot(nil, BotDraft{Name: "x", Provider: "anthropic"}, ids); ok || len(got) != 0 {
		t.Fatal("expected no-op for unknown provider")
	}
	if got, _, ok := SubmitRule(nil, RuleDraft{Name: "x", TargetUsers: " , "}, ids); ok || len(got) != 0 {
		t.Fatal("expected no-op for rule without target users")
	}
	if got, _, ok := SubmitRule(nil, RuleDraft{Name: "x", TargetUsers: "@a", Frequency: "monthly"}, ids); ok || len(got) != 0 {
		t.Fatal("expected no-op for unknown frequency")
	}
	if next := ids.NewID(); next != "1" {
		t.Fatalf("expected invalid drafts not to consume ids, got %s", next)
	}
}

func TestRemove(t *testing.T) {
	accounts := seedAccounts()
	accounts = Append(accounts, models.Account{ID: "3", Username: "@usuario3"})

	after := Remove(accounts, "2")
	if len(after) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(after))
	}
	if after[0] != accounts[0] || after[1] != accounts[2] {
		t.Fatalf("expected remaining order preserved, got %+v", after)
	}
	if _, ok := Find(after, "2"); ok {
		t.Fatal("expected removed id absent")
	}
	if len(Remove(accounts, "missing")) != 3 {
		t.Fatal("expected unknown id to leave collection intact")
	}
}

func TestToggleActiveTwiceRestores(t *testing.T) {
	campaigns := []models.Campaign{
		{ID: "1", Name: "Campaña de alcance SEO", AccountID: "1", TemplateID: "1", TargetUsers: []string{"@usuario1", "@usuario2"}, IsActive: true, CreatedAt: now},
		{ID: "2", Name: "Otra", IsActive: false},
	}

	once := ToggleActive(campaigns, "1")
	if once[0].IsActive {
		t.Fatal("expected campaign deactivated")
	}
	if !reflect.DeepEqual(once[1], campaigns[1]) {
		t.Fatal("expected other campaign unchanged")
	}
	if !campaigns[0].IsActive {
		t.Fatal("input collection was mutated")
	}

	twice := ToggleActive(once, "1")
	if !reflect.DeepEqual(twice, campaigns) {
		t.Fatalf("expected original collection, got %+v", twice)
	}
}

func TestSubmitCampaignSplitsTargets(t *testing.T) {
	_, campaign, ok := SubmitCampaign(nil, CampaignDraft{
		Name:        "Alcance",
		AccountID:   "1",
		TemplateID:  "dangling",
		TargetUsers: "@a, @b ,, @c",
	}, NewSequence(1), now)
	if !ok {
		t.Fatal("expected valid draft")
	}
	if want := []string{"@a", "@b", "@c"}; !reflect.DeepEqual(campaign.TargetUsers, want) {
		t.Fatalf("expected %v, got %v", want, campaign.TargetUsers)
	}
	if campaign.IsActive || !campaign.CreatedAt.Equal(now) {
		t.Fatalf("expected inactive campaign created now, got %+v", campaign)
	}
}

func TestSubmitRuleDefaults(t *testing.T) {
	_, rule, ok := SubmitRule(nil, RuleDraft{Name: "Competidores", TargetUsers: "@x", Keywords: "SEO, marketing"}, NewSequence(1))
	if !ok {
		t.Fatal("expected valid draft")
	}
	if rule.Frequency != models.FrequencyDaily {
		t.Fatalf("expected daily default, got %q", rule.Frequency)
	}
	if rule.IsActive {
		t.Fatal("expected new rule inactive")
	}
	if want := []string{"SEO", "marketing"}; !reflect.DeepEqual(rule.Keywords, want) {
		t.Fatalf("expected %v, got %v", want, rule.Keywords)
	}
}

func TestSubmitBot(t *testing.T) {
	_, bot, ok := SubmitBot(nil, BotDraft{Name: "Soporte", Provider: models.ProviderCustomAPI, APIEndpoint: "https://bots.example.com", AccountIDs: []string{"1", ""}}, NewSequence(1))
	if !ok {
		t.Fatal("expected valid draft")
	}
	if bot.IsActive {
		t.Fatal("expected new bot inactive")
	}
	if !reflect.DeepEqual(bot.AccountIDs, []string{"1"}) {
		t.Fatalf("expected blank account ids dropped, got %v", bot.AccountIDs)
	}
}

func TestSubmitBotDefaultsProvider(t *testing.T) {
	_, bot, ok := SubmitBot(nil, BotDraft{Name: "Ventas"}, NewSequence(1))
	if !ok {
		t.Fatal("expected draft without provider to be valid")
	}
	if bot.Provider != models.ProviderOpenAI {
		t.Fatalf("expected openai default, got %q", bot.Provider)
	}
}

func TestMarkCommented(t *testing.T) {
	content := []models.ScrapedContent{
		{ID: "1", Username: "@usuario1", Content: "post", Timestamp: now, URL: "https://twitter.com/usuario1/status/123456789"},
	}

	after := MarkCommented(content, "1")
	want := content[0]
	want.HasBeenCommented = true
	if after[0] != want {
		t.Fatalf("expected only the commented flag to change, got %+v", after[0])
	}
	if content[0].HasBeenCommented {
		t.Fatal("input collection was mutated")
	}
}

func TestSplitList(t *testing.T) {
	if got := SplitList(""); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
	if got := SplitList(" @a ,@b"); !reflect.DeepEqual(got, []string{"@a", "@b"}) {
		t.Fatalf("unexpected split %v", got)
	}
}

func TestSequenceIsMonotonicAcrossGoroutines(t *testing.T) {
	seq := NewSequence(1)
	var (
		mu   sync.Mutex
		seen = make(map[string]bool)
		wg   sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id := seq.NewID()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != 800 {
		t.Fatalf("expected 800 distinct ids, got %d", len(seen))
	}
	if next := seq.NewID(); next != "801" {
		t.Fatalf("expected next id 801, got %s", next)
	}
}

func TestNewGenerator(t *testing.T) {
	gen, err := NewGenerator("uuid")
	if err != nil {
		t.Fatalf("uuid generator: %v", err)
	}
	if a, b := gen.NewID(), gen.NewID(); a == b || len(a) != 36 {
		t.Fatalf("expected distinct uuids, got %q %q", a, b)
	}
	if _, err := NewGenerator("snowflake"); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}
