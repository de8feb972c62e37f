package postgre

const statsQuery = `
SELECT
	(SELECT COUNT(*) FROM checklists)  AS checklists,
	(SELECT COUNT(*) FROM managers)    AS managers,
	(SELECT COUNT(*) FROM transcripts) AS transcripts,
	(SELECT COUNT(*) FROM analyses)    AS analyses`

const (
	checklistColumns = `id, name, version, description, definition, created_at, updated_at`

	insertChecklistQuery = `
INSERT INTO checklists (id, name, version, description, definition, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name, version = EXCLUDED.version, description = EXCLUDED.description,
	definition = EXCLUDED.definition, updated_at = EXCLUDED.updated_at`

	updateChecklistQuery = `
UPDATE checklists SET name = $2, version = $3, description = $4, definition = $5::jsonb, updated_at = $6
WHERE id = $1
RETURNING ` + checklistColumns
)

const (
	managerColumns = `id, name, phone, email, team_lead, department, created_at, updated_at`

	insertManagerQuery = `
INSERT INTO managers (id, name, phone, email, team_lead, department, created_at, updated_at)
VALUES (:id, :name, :phone, :email, :team_lead, :department, :created_at, :updated_at)`

	updateManagerQuery = `
UPDATE managers SET name = $2, phone = $3, email = $4, team_lead = $5, department = $6, updated_at = $7
WHERE id = $1
RETURNING ` + managerColumns
)

const (
	transcriptColumns = `id, source, language, text, content_hash, audio_file_name, audio_object_key, duration, segments, created_at`

	insertTranscriptQuery = `
INSERT INTO transcripts (id, source, language, text, content_hash, audio_file_name, audio_object_key, duration, segments, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10)
ON CONFLICT (content_hash) DO NOTHING`

	setTranscriptAudioKeyQuery = `UPDATE transcripts SET audio_object_key = $2 WHERE id = $1`
)

const (
	analysisColumns = `id, transcript_id, checklist_id, checklist_name, checklist_version, manager_id,
	source, language, model, checklist_report, objections_report, total_score, percentage, created_at`

	// manager_name is resolved at read time so renamed managers show their current name.
	analysisSelect = `
SELECT a.id, a.transcript_id, a.checklist_id, a.checklist_name, a.checklist_version, a.manager_id,
	COALESCE(m.name, '') AS manager_name, a.source, a.language, a.model,
	a.checklist_report, a.objections_report, a.total_score, a.percentage, a.created_at
FROM analyses a
LEFT JOIN managers m ON m.id = a.manager_id`

	insertAnalysisQuery = `
INSERT INTO analyses (` + analysisColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::jsonb, $11::jsonb, $12, $13, $14)`
)
