package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/asset-tracker/models"
)

const (
	usersTable  = "users"
	assetsTable = "assets"

	likeEscapeChar = `\`
)

var (
	userColumns  = []string{"id", "username", "password_hash", "created_at"}
	assetColumns = []string{"id", "asset_id", "name", "category", "status", "assigned_to", "created_at"}

	// searchColumns are matched by the free-text search filter.
	searchColumns = []string{"name", "asset_id", "assigned_to"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// buildInsertUserQuery leaves created_at to the column default when the user
// carries no creation time.
func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	insert := b.Insert(usersTable)
	if user.CreatedAt.IsZero() {
		insert = insert.Columns("username", "password_hash").
			Values(user.Username, user.PasswordHash)
	} else {
		insert = insert.Columns("username", "password_hash", "created_at").
			Values(user.Username, user.PasswordHash, user.CreatedAt)
	}

	return insert.Suffix(returning(userColumns)).ToSql()
}

func buildSelectUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildInsertAssetQuery(b sq.StatementBuilderType, asset models.Asset) (string, []any, error) {
	return b.Insert(assetsTable).
		Columns("asset_id", "name", "category", "status", "assigned_to", "created_at").
		Values(
			asset.AssetID,
			asset.Name,
			string(asset.Category),
			string(asset.Status),
			asset.AssignedTo,
			asset.CreatedAt,
		).
		Suffix(returning(assetColumns)).
		ToSql()
}

// buildSelectAssetsQuery builds the list query. Empty filter fields add no
// condition; the search term is matched case-insensitively as a substring
// with LIKE wildcards in it taken literally.
func buildSelectAssetsQuery(b sq.StatementBuilderType, filter models.AssetFilter) (string, []any, error) {
	query := b.Select(assetColumns...).From(assetsTable)

	if filter.Category != "" {
		query = query.Where(sq.Eq{"category": string(filter.Category)})
	}

	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": string(filter.Status)})
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"

		anyColumn := make(sq.Or, 0, len(searchColumns))
		for _, column := range searchColumns {
			anyColumn = append(anyColumn,
				sq.Expr("LOWER("+column+") LIKE LOWER(?) ESCAPE '"+likeEscapeChar+"'", pattern))
		}
		query = query.Where(anyColumn)
	}

	return query.OrderBy("created_at DESC", "id DESC").ToSql()
}

func buildUpdateAssetQuery(b sq.StatementBuilderType, asset models.Asset) (string, []any, error) {
	return b.Update(assetsTable).
		Set("asset_id", asset.AssetID).
		Set("name", asset.Name).
		Set("category", string(asset.Category)).
		Set("status", string(asset.Status)).
		Set("assigned_to", asset.AssignedTo).
		Where(sq.Eq{"id": asset.ID}).
		Suffix(returning(assetColumns)).
		ToSql()
}

func buildDeleteAssetQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(assetsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// escapeLike escapes the LIKE wildcards and the escape character itself.
func escapeLike(s string) string {
	return strings.NewReplacer(
		likeEscapeChar, likeEscapeChar+likeEscapeChar,
		"%", likeEscapeChar+"%",
		"_", likeEscapeChar+"_",
	).Replace(s)
}
