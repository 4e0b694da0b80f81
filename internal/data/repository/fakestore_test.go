package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeStore is an in-memory DynamoIface double for exercising the
// conditioned-write paths. It evaluates the condition/update expression
// subset the repositories emit: attribute_exists / attribute_not_exists,
// =, <, >= comparisons, AND/OR with parentheses, #name substitution, and
// SET/REMOVE/ADD update clauses. Writes are serialized by a mutex so
// concurrent tests observe the store's one-winner semantics.
type fakeStore struct {
	mu     sync.Mutex
	keys   map[string][]string                            // table -> key attribute names
	tables map[string]map[string]map[string]types.AttributeValue // table -> pk -> item
}

func newFakeStore(keys map[string][]string) *fakeStore {
	return &fakeStore{
		keys:   keys,
		tables: make(map[string]map[string]map[string]types.AttributeValue),
	}
}

// testTables is the key schema the repositories use.
func testTables() map[string][]string {
	return map[string][]string{
		"events":           {"eventId"},
		"event_date_locks": {"eventDate"},
		"table_locks":      {"eventDate", "tableId"},
		"reservations":     {"eventDate", "reservationId"},
		"frequent_clients": {"clientId"},
		"crm_profiles":     {"phone"},
	}
}

func (f *fakeStore) itemKey(table string, item map[string]types.AttributeValue) (string, error) {
	attrs, ok := f.keys[table]
	if !ok {
		return "", fmt.Errorf("unknown table %s", table)
	}
	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		v, ok := item[a].(*types.AttributeValueMemberS)
		if !ok {
			return "", fmt.Errorf("table %s: missing key attribute %s", table, a)
		}
		parts = append(parts, v.Value)
	}
	return strings.Join(parts, "/"), nil
}

func (f *fakeStore) get(table, key string) map[string]types.AttributeValue {
	return f.tables[table][key]
}

func (f *fakeStore) put(table, key string, item map[string]types.AttributeValue) {
	if f.tables[table] == nil {
		f.tables[table] = make(map[string]map[string]types.AttributeValue)
	}
	f.tables[table][key] = copyItem(item)
}

func (f *fakeStore) count(table string) int {
	return len(f.tables[table])
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	if item == nil {
		return nil
	}
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}

// ---------- DynamoIface ----------

func (f *fakeStore) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key, err := f.itemKey(*params.TableName, params.Key)
	if err != nil {
		return nil, err
	}
	return &dynamodb.GetItemOutput{Item: copyItem(f.get(*params.TableName, key))}, nil
}

func (f *fakeStore) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.applyPut(&types.Put{
		TableName:                 params.TableName,
		Item:                      params.Item,
		ConditionExpression:       params.ConditionExpression,
		ExpressionAttributeNames:  params.ExpressionAttributeNames,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
	}, false); err != nil {
		return nil, err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeStore) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.applyUpdate(&types.Update{
		TableName:                 params.TableName,
		Key:                       params.Key,
		UpdateExpression:          params.UpdateExpression,
		ConditionExpression:       params.ConditionExpression,
		ExpressionAttributeNames:  params.ExpressionAttributeNames,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
	}, false); err != nil {
		return nil, err
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeStore) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.applyDelete(&types.Delete{
		TableName:                 params.TableName,
		Key:                       params.Key,
		ConditionExpression:       params.ConditionExpression,
		ExpressionAttributeNames:  params.ExpressionAttributeNames,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
	}, false); err != nil {
		return nil, err
	}
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeStore) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	cond, err := parseExpr(*params.KeyConditionExpression, params.ExpressionAttributeNames, params.ExpressionAttributeValues)
	if err != nil {
		return nil, err
	}

	var items []map[string]types.AttributeValue
	for _, item := range f.tables[*params.TableName] {
		if cond(item) {
			items = append(items, copyItem(item))
		}
	}
	return &dynamodb.QueryOutput{Items: items}, nil
}

func (f *fakeStore) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var items []map[string]types.AttributeValue
	for _, item := range f.tables[*params.TableName] {
		items = append(items, copyItem(item))
	}
	return &dynamodb.ScanOutput{Items: items}, nil
}

func (f *fakeStore) TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// check every item's precondition first; apply only if all pass
	for _, item := range params.TransactItems {
		var err error
		switch {
		case item.Put != nil:
			err = f.checkPut(item.Put)
		case item.Update != nil:
			err = f.checkUpdate(item.Update)
		case item.Delete != nil:
			err = f.checkDelete(item.Delete)
		}
		if err != nil {
			return nil, &types.TransactionCanceledException{
				Message: aws.String("Transaction cancelled, please refer cancellation reasons for specific reasons"),
				CancellationReasons: []types.CancellationReason{
					{Code: aws.String("ConditionalCheckFailed")},
				},
			}
		}
	}

	for _, item := range params.TransactItems {
		switch {
		case item.Put != nil:
			f.applyPut(item.Put, true)
		case item.Update != nil:
			f.applyUpdate(item.Update, true)
		case item.Delete != nil:
			f.applyDelete(item.Delete, true)
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

// ---------- write helpers ----------

func condFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}

func (f *fakeStore) checkCondition(table string, key string, expr *string, names map[string]string, values map[string]types.AttributeValue) error {
	if expr == nil {
		return nil
	}
	cond, err := parseExpr(*expr, names, values)
	if err != nil {
		return err
	}
	if !cond(f.get(table, key)) {
		return condFailed()
	}
	return nil
}

func (f *fakeStore) checkPut(p *types.Put) error {
	key, err := f.itemKey(*p.TableName, p.Item)
	if err != nil {
		return err
	}
	return f.checkCondition(*p.TableName, key, p.ConditionExpression, p.ExpressionAttributeNames, p.ExpressionAttributeValues)
}

func (f *fakeStore) applyPut(p *types.Put, checked bool) error {
	key, err := f.itemKey(*p.TableName, p.Item)
	if err != nil {
		return err
	}
	if !checked {
		if err := f.checkCondition(*p.TableName, key, p.ConditionExpression, p.ExpressionAttributeNames, p.ExpressionAttributeValues); err != nil {
			return err
		}
	}
	f.put(*p.TableName, key, p.Item)
	return nil
}

func (f *fakeStore) checkUpdate(u *types.Update) error {
	key, err := f.itemKey(*u.TableName, u.Key)
	if err != nil {
		return err
	}
	return f.checkCondition(*u.TableName, key, u.ConditionExpression, u.ExpressionAttributeNames, u.ExpressionAttributeValues)
}

func (f *fakeStore) applyUpdate(u *types.Update, checked bool) error {
	key, err := f.itemKey(*u.TableName, u.Key)
	if err != nil {
		return err
	}
	if !checked {
		if err := f.checkCondition(*u.TableName, key, u.ConditionExpression, u.ExpressionAttributeNames, u.ExpressionAttributeValues); err != nil {
			return err
		}
	}

	item := copyItem(f.get(*u.TableName, key))
	if item == nil {
		// UpdateItem upserts: start from the key attributes
		item = copyItem(u.Key)
	}
	if err := applyUpdateExpression(item, *u.UpdateExpression, u.ExpressionAttributeNames, u.ExpressionAttributeValues); err != nil {
		return err
	}
	f.put(*u.TableName, key, item)
	return nil
}

func (f *fakeStore) checkDelete(d *types.Delete) error {
	key, err := f.itemKey(*d.TableName, d.Key)
	if err != nil {
		return err
	}
	return f.checkCondition(*d.TableName, key, d.ConditionExpression, d.ExpressionAttributeNames, d.ExpressionAttributeValues)
}

func (f *fakeStore) applyDelete(d *types.Delete, checked bool) error {
	key, err := f.itemKey(*d.TableName, d.Key)
	if err != nil {
		return err
	}
	if !checked {
		if err := f.checkCondition(*d.TableName, key, d.ConditionExpression, d.ExpressionAttributeNames, d.ExpressionAttributeValues); err != nil {
			return err
		}
	}
	delete(f.tables[*d.TableName], key)
	return nil
}

// ---------- expression evaluation ----------

type predicate func(item map[string]types.AttributeValue) bool

// parseExpr compiles a condition or key-condition expression into a
// predicate over an item (nil item means the record is absent).
func parseExpr(expr string, names map[string]string, values map[string]types.AttributeValue) (predicate, error) {
	p := &exprParser{tokens: tokenize(expr), names: names, values: values}
	pred, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("unexpected token %q in %q", p.tokens[p.pos], expr)
	}
	return pred, nil
}

func tokenize(expr string) []string {
	var tokens []string
	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case c == ' ':
			i++
		case c == '(' || c == ')' || c == ',':
			tokens = append(tokens, string(c))
			i++
		case c == '=':
			tokens = append(tokens, "=")
			i++
		case c == '<':
			tokens = append(tokens, "<")
			i++
		case c == '>':
			if i+1 < len(expr) && expr[i+1] == '=' {
				tokens = append(tokens, ">=")
				i += 2
			} else {
				tokens = append(tokens, ">")
				i++
			}
		default:
			j := i
			for j < len(expr) && !strings.ContainsRune(" (),=<>", rune(expr[j])) {
				j++
			}
			tokens = append(tokens, expr[i:j])
			i = j
		}
	}
	return tokens
}

type exprParser struct {
	tokens []string
	pos    int
	names  map[string]string
	values map[string]types.AttributeValue
}

func (p *exprParser) peek() string {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return ""
}

func (p *exprParser) next() string {
	t := p.peek()
	p.pos++
	return t
}

func (p *exprParser) expect(tok string) error {
	if got := p.next(); got != tok {
		return fmt.Errorf("expected %q, got %q", tok, got)
	}
	return nil
}

func (p *exprParser) parseOr() (predicate, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for strings.EqualFold(p.peek(), "OR") {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		l := left
		left = func(item map[string]types.AttributeValue) bool { return l(item) || right(item) }
	}
	return left, nil
}

func (p *exprParser) parseAnd() (predicate, error) {
	left, err := p.parseUnit()
	if err != nil {
		return nil, err
	}
	for strings.EqualFold(p.peek(), "AND") {
		p.next()
		right, err := p.parseUnit()
		if err != nil {
			return nil, err
		}
		l := left
		left = func(item map[string]types.AttributeValue) bool { return l(item) && right(item) }
	}
	return left, nil
}

func (p *exprParser) parseUnit() (predicate, error) {
	tok := p.next()

	if tok == "(" {
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		return inner, nil
	}

	if strings.EqualFold(tok, "attribute_exists") || strings.EqualFold(tok, "attribute_not_exists") {
		if err := p.expect("("); err != nil {
			return nil, err
		}
		attr := p.resolveName(p.next())
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		negate := strings.EqualFold(tok, "attribute_not_exists")
		return func(item map[string]types.AttributeValue) bool {
			_, ok := item[attr]
			return ok != negate
		}, nil
	}

	// path op :value
	attr := p.resolveName(tok)
	op := p.next()
	ref := p.next()
	val, ok := p.values[ref]
	if !ok {
		return nil, fmt.Errorf("unresolved value %q", ref)
	}
	return func(item map[string]types.AttributeValue) bool {
		cur, ok := item[attr]
		if !ok {
			return false
		}
		return compareAttr(cur, op, val)
	}, nil
}

func (p *exprParser) resolveName(tok string) string {
	if strings.HasPrefix(tok, "#") {
		if real, ok := p.names[tok]; ok {
			return real
		}
	}
	return tok
}

func compareAttr(a types.AttributeValue, op string, b types.AttributeValue) bool {
	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		bv, ok := b.(*types.AttributeValueMemberS)
		if !ok {
			return false
		}
		switch op {
		case "=":
			return av.Value == bv.Value
		case "<":
			return av.Value < bv.Value
		case ">=":
			return av.Value >= bv.Value
		}
	case *types.AttributeValueMemberN:
		bv, ok := b.(*types.AttributeValueMemberN)
		if !ok {
			return false
		}
		an, err1 := strconv.ParseFloat(av.Value, 64)
		bn, err2 := strconv.ParseFloat(bv.Value, 64)
		if err1 != nil || err2 != nil {
			return false
		}
		switch op {
		case "=":
			return an == bn
		case "<":
			return an < bn
		case ">=":
			return an >= bn
		}
	}
	return false
}

// applyUpdateExpression handles SET path = :val, REMOVE path and ADD path :val
// clauses in any order.
func applyUpdateExpression(item map[string]types.AttributeValue, expr string, names map[string]string, values map[string]types.AttributeValue) error {
	resolve := func(tok string) string {
		if strings.HasPrefix(tok, "#") {
			if real, ok := names[tok]; ok {
				return real
			}
		}
		return tok
	}

	tokens := tokenize(expr)
	mode := ""
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		switch {
		case strings.EqualFold(tok, "SET"), strings.EqualFold(tok, "REMOVE"), strings.EqualFold(tok, "ADD"):
			mode = strings.ToUpper(tok)
			i++
		case tok == ",":
			i++
		default:
			switch mode {
			case "SET":
				// path = :val
				if i+2 >= len(tokens) || tokens[i+1] != "=" {
					return fmt.Errorf("malformed SET clause at %q", tok)
				}
				val, ok := values[tokens[i+2]]
				if !ok {
					return fmt.Errorf("unresolved value %q", tokens[i+2])
				}
				item[resolve(tok)] = val
				i += 3
			case "REMOVE":
				delete(item, resolve(tok))
				i++
			case "ADD":
				// path :val (numeric)
				if i+1 >= len(tokens) {
					return fmt.Errorf("malformed ADD clause at %q", tok)
				}
				val, ok := values[tokens[i+1]].(*types.AttributeValueMemberN)
				if !ok {
					return fmt.Errorf("ADD needs a numeric value for %q", tok)
				}
				attr := resolve(tok)
				cur := 0.0
				if existing, ok := item[attr].(*types.AttributeValueMemberN); ok {
					cur, _ = strconv.ParseFloat(existing.Value, 64)
				}
				inc, err := strconv.ParseFloat(val.Value, 64)
				if err != nil {
					return err
				}
				item[attr] = &types.AttributeValueMemberN{Value: strconv.FormatFloat(cur+inc, 'f', -1, 64)}
				i += 2
			default:
				return fmt.Errorf("token %q outside any clause", tok)
			}
		}
	}
	return nil
}
