package commands

import (
	"fmt"
	"log"

	"bizmanage/backend/internal/pkg/repository/postgresql"

	"github.com/pkg/errors"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "Create table: users.",
		Query: `
        CREATE TABLE IF NOT EXISTS users (
            id serial primary key,
            employee_id text not null,
            password text not null,
            full_name text,
            role text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       2,
		Description: "Create admin with employee_id: Admin01, password: 1",
		Query: `
        INSERT INTO users(employee_id, role, password, full_name)
        SELECT 'Admin01', 'ADMIN', '$2a$10$NKtnMwDPFSQLG6uOi4Zqheru5Ygbj9TWFHjpl478rRSaO5cJ9QuH2', 'Administrator'
        WHERE NOT EXISTS (SELECT employee_id FROM users WHERE employee_id = 'Admin01');
        `,
	},
	{
		Index:       3,
		Description: "Create table: employees.",
		Query: `
        CREATE TABLE IF NOT EXISTS employees (
            id serial primary key,
            employee_id text,
            emp_id text,
            name text not null,
            phone text,
            email text,
            position text,
            daily_wage numeric,
            salary numeric,
            status text default 'active',
            joining_date date,
            last_bonus_paid text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       4,
		Description: "Create table: attendance.",
		Query: `
        CREATE TABLE IF NOT EXISTS attendance (
            id serial primary key,
            employee_id text not null,
            work_day date not null,
            check_in_time text,
            check_out_time text,
            working_hours numeric,
            status text,
            notes text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       5,
		Description: "Create table: customers.",
		Query: `
        CREATE TABLE IF NOT EXISTS customers (
            id serial primary key,
            customer_id text,
            name text not null,
            email text,
            phone text,
            company text,
            address text,
            gst_number text,
            credit_limit numeric,
            outstanding_balance numeric default 0,
            status text default 'active',
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       6,
		Description: "Create table: sales.",
		Query: `
        CREATE TABLE IF NOT EXISTS sales (
            id serial primary key,
            sale_id text not null,
            customer_id text,
            customer_name text,
            items jsonb,
            subtotal numeric,
            total_discount numeric,
            total_tax numeric,
            total_amount numeric,
            payment_method text,
            payment_status text,
            status text,
            order_date date,
            delivery_date date,
            notes text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       7,
		Description: "Create table: purchases.",
		Query: `
        CREATE TABLE IF NOT EXISTS purchases (
            id serial primary key,
            purchase_id text not null,
            item_name text,
            quantity int,
            unit_price numeric,
            total_price numeric,
            supplier_name text,
            supplier_contact text,
            supplier_address text,
            date date,
            payment_method text,
            payment_status text,
            paid_amount numeric,
            due_amount numeric,
            invoice_number text,
            delivery_date date,
            category text,
            notes text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       8,
		Description: "Create table: suppliers.",
		Query: `
        CREATE TABLE IF NOT EXISTS suppliers (
            id serial primary key,
            name text not null,
            contact_number text,
            email text,
            address text,
            gst_number text,
            payment_terms text,
            category text,
            total_purchases numeric default 0,
            outstanding_amount numeric default 0,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       9,
		Description: "Create table: company_info.",
		Query: `
        CREATE TABLE IF NOT EXISTS company_info (
            id serial primary key,
            company_name text,
            address text,
            phone text,
            email text,
            gst_number text,
            currency text default 'INR',
            start_time text,
            end_time text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       10,
		Description: "Seed company_info.",
		Query: `
        INSERT INTO company_info(company_name, currency)
        SELECT 'My Company', 'INR'
        WHERE NOT EXISTS (SELECT id FROM company_info WHERE deleted_at IS NULL);
        `,
	},
	{
		Index:       11,
		Description: "Index attendance lookups by employee and day.",
		Query: `
        CREATE INDEX IF NOT EXISTS idx_attendance_employee_work_day
        ON attendance (employee_id, work_day)
        WHERE deleted_at IS NULL;`,
	},
}

func Migrate(db *postgresql.Database) {
	for _, s := range scheme {
		if _, err := db.Query(s.Query); err != nil {
			log.Fatalln("migrate error", err)
		}
	}
}

func MigrateUP(db *postgresql.Database) {
	var (
		version int
		dirty   bool
		er      *string
	)
	err := db.QueryRow("SELECT version, dirty, error FROM schema_migrations").Scan(&version, &dirty, &er)
	if err != nil {
		if err.Error() == `ERROR: relation "schema_migrations" does not exist (SQLSTATE=42P01)` {
			if _, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS schema_migrations (version int not null, dirty bool not null, error text);
				DELETE FROM schema_migrations;
				INSERT INTO schema_migrations (version, dirty) values (0, false);
			`); err != nil {
				log.Fatalln("migrate schema_migrations create error", err)
			}
			version = 0
			dirty = false
		} else {
			log.Fatalln("migrate schema_migrations scan: ", err)
		}
	}

	if dirty {
		for _, v := range scheme {
			if v.Index == version {
				if _, err = db.Exec(v.Query); err != nil {
					if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s'`, err.Error())); err != nil {
						log.Fatalln("migrate error", err)
					}
					log.Fatalln(fmt.Sprintf("migrate error version: %d", version), err)
				}
				if _, err = db.Exec(`UPDATE schema_migrations SET dirty = false, error = null`); err != nil {
					log.Fatalln("migrate error", err)
				}
			}
		}
	}

	for _, s := range scheme {
		if s.Index > version {
			if _, err = db.Exec(s.Query); err != nil {
				if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s', version = %d, dirty = true`, err.Error(), s.Index)); err != nil {
					log.Fatalln("migrate error", err)
				}
				log.Fatalln(fmt.Sprintf("migrate error version: %d", s.Index), err)
			}
			if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET version = %d`, s.Index)); err != nil {
				log.Fatalln("migrate error", err)
			}
		}
	}
}
