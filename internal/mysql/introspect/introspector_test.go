package introspect

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pighand/codebuilder/internal/common/models"
)

var (
	tablesQuery  = regexp.QuoteMeta("FROM information_schema.TABLES AS t")
	columnsQuery = regexp.QuoteMeta("FROM information_schema.COLUMNS AS c")

	columnHeader = []string{
		"TABLE_NAME", "COLUMN_NAME", "IS_NULLABLE", "DATA_TYPE", "COLUMN_TYPE",
		"CHARACTER_MAXIMUM_LENGTH", "COLUMN_KEY", "EXTRA", "COLUMN_COMMENT",
	}
)

type optMock struct {
	mock.Mock
}

func (o *optMock) GetDatabase() string {
	return o.Called().String(0)
}

func (o *optMock) GetTableNames() []string {
	res := o.Called().Get(0)
	if res == nil {
		return nil
	}
	return res.([]string)
}

func (o *optMock) GetRelationTable() string {
	return o.Called().String(0)
}

func newOptMock(tables []string) *optMock {
	opt := &optMock{}
	opt.On("GetDatabase").Return("testdb")
	opt.On("GetTableNames").Return(tables)
	opt.On("GetRelationTable").Return("code_builder_relation")
	return opt
}

func TestIntrospector_Introspect(t *testing.T) {
	t.Run("named tables", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		sqlMock.ExpectQuery(tablesQuery).
			WithArgs("testdb", "user_profile", "missing_table").
			WillReturnRows(
				sqlmock.NewRows([]string{"TABLE_NAME", "TABLE_COMMENT"}).
					AddRow("user_profile", "user profiles"),
			)
		sqlMock.ExpectQuery(columnsQuery).
			WithArgs("testdb", "user_profile").
			WillReturnRows(
				sqlmock.NewRows(columnHeader).
					AddRow("user_profile", "id", "NO", "int", "int", nil, "PRI", "auto_increment", "").
					AddRow("user_profile", "user_name", "NO", "varchar", "varchar(255)", int64(255), "", "", "name").
					AddRow("user_profile", "created_at", "YES", "datetime", "datetime", nil, "", "", ""),
			)

		i := NewIntrospector(db, newOptMock([]string{"user_profile", "missing_table"}))
		res, err := i.Introspect(context.Background())
		require.NoError(t, err)
		require.NoError(t, sqlMock.ExpectationsWereMet())

		require.Equal(t, []models.TableInfo{{TableName: "user_profile", TableComment: "user profiles"}}, res.Tables)
		columns := res.TableColumnMap["user_profile"]
		require.Len(t, columns, 3)
		names := []string{columns[0].ColumnName, columns[1].ColumnName, columns[2].ColumnName}
		assert.Equal(t, []string{"id", "user_name", "created_at"}, names)

		assert.True(t, columns[0].PrimaryKey)
		assert.True(t, columns[0].AutoIncrement)
		assert.Equal(t, "userName", columns[1].ColumnHumpName)
		assert.False(t, columns[1].PrimaryKey)
		require.NotNil(t, columns[1].CharacterMaximumLength)
		assert.Equal(t, int64(255), *columns[1].CharacterMaximumLength)
		assert.True(t, columns[2].IsNullable)
		assert.Equal(t, "DATETIME", columns[2].DataType)
	})

	t.Run("all tables exclude relation table", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		sqlMock.ExpectQuery(tablesQuery+".*"+regexp.QuoteMeta("t.TABLE_NAME <> ?")).
			WithArgs("testdb", "code_builder_relation").
			WillReturnRows(
				sqlmock.NewRows([]string{"TABLE_NAME", "TABLE_COMMENT"}).
					AddRow("role", "").
					AddRow("user", nil),
			)
		sqlMock.ExpectQuery(columnsQuery).
			WithArgs("testdb", "role", "user").
			WillReturnRows(
				sqlmock.NewRows(columnHeader).
					AddRow("user", "id", "NO", "bigint", "bigint", nil, "PRI", "", ""),
			)

		i := NewIntrospector(db, newOptMock(nil))
		res, err := i.Introspect(context.Background())
		require.NoError(t, err)
		require.NoError(t, sqlMock.ExpectationsWereMet())

		require.Len(t, res.Tables, 2)
		assert.Equal(t, "", res.Tables[1].TableComment)
		roleColumns, ok := res.TableColumnMap["role"]
		assert.True(t, ok, "every table must have a column entry")
		assert.Empty(t, roleColumns)
		assert.Len(t, res.TableColumnMap["user"], 1)
		assert.Equal(t, "Long", res.TableColumnMap["user"][0].JavaDataType)
	})

	t.Run("no tables found", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		sqlMock.ExpectQuery(tablesQuery).
			WillReturnRows(sqlmock.NewRows([]string{"TABLE_NAME", "TABLE_COMMENT"}))

		i := NewIntrospector(db, newOptMock(nil))
		res, err := i.Introspect(context.Background())
		require.NoError(t, err)
		require.NoError(t, sqlMock.ExpectationsWereMet())
		assert.Empty(t, res.Tables)
		assert.Empty(t, res.TableColumnMap)
	})

	t.Run("tables query error", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		sqlMock.ExpectQuery(tablesQuery).WillReturnError(errors.New("connection lost"))

		i := NewIntrospector(db, newOptMock(nil))
		_, err = i.Introspect(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrQuery)
		assert.ErrorContains(t, err, "connection lost")
	})

	t.Run("columns query error", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		sqlMock.ExpectQuery(tablesQuery).
			WillReturnRows(sqlmock.NewRows([]string{"TABLE_NAME", "TABLE_COMMENT"}).AddRow("user", ""))
		sqlMock.ExpectQuery(columnsQuery).WillReturnError(errors.New("permission denied"))

		i := NewIntrospector(db, newOptMock(nil))
		_, err = i.Introspect(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrQuery)
	})
}

func TestIntrospector_Columns_Empty(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	i := NewIntrospector(db, newOptMock(nil))
	res, err := i.Columns(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, res)
	require.NoError(t, sqlMock.ExpectationsWereMet())
}
