// Package schema guarda o SQL de criação das tabelas e views de rastreamento.
// O operador executa o script manualmente no banco; não há migração automática.
package schema

import "strings"

const (
	ClicksTable    = "sm_button_clicks"
	LeadsTable     = "sm_leads"
	ClickStatsView = "sm_button_clicks_stats"
	LeadStatsView  = "sm_leads_stats"
)

// Core cria tabelas, restrição de e-mail único e as views agregadas
const Core = `-- Tabela de cliques nos botões da landing page
CREATE TABLE IF NOT EXISTS sm_button_clicks (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  button_type TEXT NOT NULL,
  user_ip TEXT,
  user_agent TEXT,
  referrer TEXT,
  button_text TEXT,
  button_url TEXT,
  metadata JSONB NOT NULL DEFAULT '{}'::jsonb,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);

-- Tabela de leads (e-mails) capturados
CREATE TABLE IF NOT EXISTS sm_leads (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  email TEXT NOT NULL UNIQUE,
  source TEXT,
  marketing_consent BOOLEAN NOT NULL DEFAULT FALSE,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);

CREATE OR REPLACE VIEW sm_button_clicks_stats AS
  SELECT
    button_type,
    COUNT(*) AS click_count,
    MIN(created_at) AS first_click,
    MAX(created_at) AS last_click
  FROM sm_button_clicks
  GROUP BY button_type;

-- Linhas antigas codificavam o consentimento como sufixo em source; o
-- agrupamento usa o source sem sufixo, igual à listagem de leads
CREATE OR REPLACE VIEW sm_leads_stats AS
  SELECT
    regexp_replace(source, '_marketing_(yes|no)$', '') AS source,
    COUNT(*) AS lead_count,
    MIN(created_at) AS first_lead,
    MAX(created_at) AS last_lead
  FROM sm_leads
  GROUP BY 1;
`

// Policies habilita RLS: anônimos só inserem, autenticados têm acesso total
const Policies = `-- Papéis usados pelo Supabase (criados apenas se não existirem)
DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_roles WHERE rolname = 'anon') THEN
    CREATE ROLE anon NOLOGIN;
  END IF;
  IF NOT EXISTS (SELECT 1 FROM pg_roles WHERE rolname = 'authenticated') THEN
    CREATE ROLE authenticated NOLOGIN;
  END IF;
END
$$;

ALTER TABLE sm_button_clicks ENABLE ROW LEVEL SECURITY;
ALTER TABLE sm_leads ENABLE ROW LEVEL SECURITY;

-- Anônimos podem apenas inserir
CREATE POLICY "anon insere cliques" ON sm_button_clicks
  FOR INSERT TO anon WITH CHECK (true);

CREATE POLICY "anon insere leads" ON sm_leads
  FOR INSERT TO anon WITH CHECK (true);

-- Administradores têm acesso total
CREATE POLICY "admin acesso total cliques" ON sm_button_clicks
  FOR ALL TO authenticated USING (true);

CREATE POLICY "admin acesso total leads" ON sm_leads
  FOR ALL TO authenticated USING (true);

GRANT INSERT ON sm_button_clicks, sm_leads TO anon;
GRANT SELECT ON sm_button_clicks_stats TO authenticated;
GRANT SELECT ON sm_leads_stats TO authenticated;
`

// Script devolve o DDL completo exibido ao operador
func Script(withPolicies bool) string {
	if !withPolicies {
		return Core
	}

	var b strings.Builder
	b.WriteString(Core)
	b.WriteString("\n")
	b.WriteString(Policies)
	return b.String()
}
