package client

import (
	"testing"

	"vitibrasil/scraper/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productionPageHTML = `
<html><body>
<table class="tb_base tb_header">
	<tr><td>Banco de dados de uva, vinho e derivados</td></tr>
</table>
<table class="tb_base tb_dados">
	<thead>
		<tr>
			<th>Produto</th>
			<th>Quantidade (L.)</th>
		</tr>
	</thead>
	<tbody>
		<tr>
			<td class="tb_item">
				VINHO DE MESA
			</td>
			<td class="tb_item">
				169.762.429
			</td>
		</tr>
		<tr>
			<td class="tb_subitem">Tinto</td>
			<td class="tb_subitem">139.320.884</td>
		</tr>
	</tbody>
	<tfoot class="tb_total">
		<tr>
			<td>Total</td>
			<td>457.792.870</td>
		</tr>
	</tfoot>
</table>
</body></html>`

func TestParseTable(t *testing.T) {
	parser := newTableParser()

	t.Run("extracts header, body and footer rows in order", func(t *testing.T) {
		rows, err := parser.ParseTable(productionPageHTML)
		require.NoError(t, err)

		assert.Equal(t, domain.ResultSet{
			{"Produto", "Quantidade (L.)"},
			{"VINHO DE MESA", "169.762.429"},
			{"Tinto", "139.320.884"},
			{"Total", "457.792.870"},
		}, rows)
	})

	t.Run("collapses whitespace inside cells", func(t *testing.T) {
		html := `<table class="tb_base tb_dados"><tr><td>
			VINHO
			FINO   DE MESA
		</td></tr></table>`

		rows, err := parser.ParseTable(html)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, domain.Row{"VINHO FINO DE MESA"}, rows[0])
	})

	t.Run("prefers the marked data table over larger tables", func(t *testing.T) {
		html := `
		<table class="tb_base tb_nav">
			<tr><td>a</td></tr><tr><td>b</td></tr><tr><td>c</td></tr>
		</table>
		<table class="tb_base tb_dados">
			<tr><td>Produto</td></tr>
		</table>`

		rows, err := parser.ParseTable(html)
		require.NoError(t, err)
		assert.Equal(t, domain.ResultSet{{"Produto"}}, rows)
	})

	t.Run("falls back to the densest table when the marker class is absent", func(t *testing.T) {
		html := `
		<table><tr><td>menu</td></tr></table>
		<table>
			<tr><td>Produto</td><td>Quantidade</td></tr>
			<tr><td>VINHO</td><td>123</td></tr>
		</table>`

		rows, err := parser.ParseTable(html)
		require.NoError(t, err)
		assert.Equal(t, domain.ResultSet{
			{"Produto", "Quantidade"},
			{"VINHO", "123"},
		}, rows)
	})

	t.Run("page without tables is an error", func(t *testing.T) {
		_, err := parser.ParseTable(`<html><body><p>Ano indisponível</p></body></html>`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no data table")
	})

	t.Run("empty data table yields an empty result set", func(t *testing.T) {
		rows, err := parser.ParseTable(`<table class="tb_base tb_dados"></table>`)
		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Len(t, rows, 0)
	})

	t.Run("rows without cells are skipped", func(t *testing.T) {
		html := `<table class="tb_base tb_dados">
			<tr></tr>
			<tr><td>VINHO</td></tr>
		</table>`

		rows, err := parser.ParseTable(html)
		require.NoError(t, err)
		assert.Equal(t, domain.ResultSet{{"VINHO"}}, rows)
	})
}
